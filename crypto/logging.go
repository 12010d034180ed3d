package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"github.com/sirupsen/logrus"
)

// LoggerHelper provides standardized logging functionality for the crypto package
type LoggerHelper struct {
	function string
	pkg      string
	fields   logrus.Fields
}

// NewLogger creates a new logger helper with standardized fields
func NewLogger(function string) *LoggerHelper {
	return &LoggerHelper{
		function: function,
		pkg:      "crypto",
		fields: logrus.Fields{
			"function": function,
			"package":  "crypto",
		},
	}
}

// WithField adds a custom field to the logger
func (l *LoggerHelper) WithField(key string, value interface{}) *LoggerHelper {
	l.fields[key] = value
	return l
}

// WithFields adds multiple custom fields to the logger
func (l *LoggerHelper) WithFields(fields logrus.Fields) *LoggerHelper {
	for k, v := range fields {
		l.fields[k] = v
	}
	return l
}

// WithError adds error information to the logger
func (l *LoggerHelper) WithError(err error, errorType, operation string) *LoggerHelper {
	l.fields["error"] = err.Error()
	l.fields["error_type"] = errorType
	l.fields["operation"] = operation
	return l
}

// Entry logs function entry
func (l *LoggerHelper) Entry(message string) {
	logrus.WithFields(l.fields).Debug(fmt.Sprintf("Function entry: %s", message))
}

// Exit logs function exit
func (l *LoggerHelper) Exit() {
	logrus.WithFields(l.fields).Debug(fmt.Sprintf("Function exit: %s", l.function))
}

// Debug logs a debug message
func (l *LoggerHelper) Debug(message string) {
	logrus.WithFields(l.fields).Debug(message)
}

// Info logs an info message
func (l *LoggerHelper) Info(message string) {
	logrus.WithFields(l.fields).Info(message)
}

// Warn logs a warning message
func (l *LoggerHelper) Warn(message string) {
	logrus.WithFields(l.fields).Warn(message)
}

// Error logs an error message
func (l *LoggerHelper) Error(message string) {
	logrus.WithFields(l.fields).Error(message)
}

// PublicKeyFields identifies an RSA public key in log output by its size and
// a short SHA-256 fingerprint of its PKCS#1 encoding. Private material is
// never logged.
func PublicKeyFields(pub *rsa.PublicKey) logrus.Fields {
	if pub == nil || pub.N == nil {
		return logrus.Fields{"key_bits": 0, "key_fingerprint": "nil"}
	}

	sum := sha256.Sum256(x509.MarshalPKCS1PublicKey(pub))
	return logrus.Fields{
		"key_bits":        pub.N.BitLen(),
		"key_fingerprint": fmt.Sprintf("%x", sum[:8]),
	}
}

// OperationFields creates standardized operation logging fields
func OperationFields(operation, status string, additional ...logrus.Fields) logrus.Fields {
	fields := logrus.Fields{
		"operation": operation,
		"status":    status,
	}

	for _, extra := range additional {
		for k, v := range extra {
			fields[k] = v
		}
	}

	return fields
}

package log

import "github.com/sirupsen/logrus"

// Package-level helpers that write to the default logger. Used by code
// that has no logger dependency injected.

func Info(args ...interface{})  { stdLogger.Info(args...) }
func Debug(args ...interface{}) { stdLogger.Debug(args...) }
func Warn(args ...interface{})  { stdLogger.Warn(args...) }
func Error(args ...interface{}) { stdLogger.Error(args...) }
func Fatal(args ...interface{}) { stdLogger.Fatal(args...) }

func Infof(format string, args ...interface{})  { stdLogger.Infof(format, args...) }
func Debugf(format string, args ...interface{}) { stdLogger.Debugf(format, args...) }
func Warnf(format string, args ...interface{})  { stdLogger.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { stdLogger.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { stdLogger.Fatalf(format, args...) }

func WithFields(f Fields) *logrus.Entry { return stdLogger.WithFields(f) }
func WithError(err error) *logrus.Entry { return stdLogger.WithError(err) }

// SetDefaultLevel adjusts the level of the package-level logger.
func SetDefaultLevel(v Level) { stdLogger.SetLevel(v) }

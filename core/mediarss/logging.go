// ABOUTME: Optional structured logging for silent-degradation paths
// ABOUTME: Defaults to a no-op logger; install an implementation with SetLogger

package mediarss

import "github.com/BumpyClock/go-mediarss/core/interfaces"

// nopLogger discards all messages. It keeps call sites unconditional.
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

var logger interfaces.Logger = nopLogger{}

// SetLogger installs a logger for the package. Malformed input is never
// an error in this library; the paths that silently leave a field absent
// report what they skipped at debug level through this logger. Passing
// nil restores the no-op default.
//
// SetLogger is not safe for concurrent use with in-flight Load calls;
// install the logger before parsing starts.
func SetLogger(l interfaces.Logger) {
	if l == nil {
		logger = nopLogger{}
		return
	}
	logger = l
}

package logger

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap/zapcore"
)

func TestLogger(t *testing.T) {
	Convey("Given the Logger package", t, func() {
		Convey("New function", func() {
			Convey("When creating a logger with console output only", func() {
				logger, err := New("info", "", false, false)

				Convey("It should create a logger successfully", func() {
					So(err, ShouldBeNil)
					So(logger, ShouldNotBeNil)
					So(func() { logger.Info("Test log") }, ShouldNotPanic)
				})
			})

			Convey("When creating a quiet logger", func() {
				logger, err := New("info", "", true, false)

				Convey("It should only log at error level", func() {
					So(err, ShouldBeNil)
					So(logger.Desugar().Core().Enabled(zapcore.ErrorLevel), ShouldBeTrue)
					So(logger.Desugar().Core().Enabled(zapcore.InfoLevel), ShouldBeFalse)
				})
			})

			Convey("When creating a verbose logger", func() {
				logger, err := New("info", "", false, true)

				Convey("It should log at debug level", func() {
					So(err, ShouldBeNil)
					So(logger.Desugar().Core().Enabled(zapcore.DebugLevel), ShouldBeTrue)
				})
			})

			Convey("When creating a logger with a valid log file", func() {
				tempDir, err := os.MkdirTemp("", "logger_test")
				So(err, ShouldBeNil)
				defer os.RemoveAll(tempDir)

				logFile := filepath.Join(tempDir, "test.log")
				logger, err := New("debug", logFile, false, false)

				Convey("It should create the logger and the log file", func() {
					So(err, ShouldBeNil)
					So(logger, ShouldNotBeNil)

					logger.Debug("Test debug log")
					logger.Sync()

					_, err := os.Stat(logFile)
					So(err, ShouldBeNil)
					logger.Close()
				})
			})

			Convey("When creating a logger with an invalid log level", func() {
				logger, err := New("invalid", "", false, false)

				Convey("It should default to info level", func() {
					So(err, ShouldBeNil)
					So(logger.Desugar().Core().Enabled(zapcore.InfoLevel), ShouldBeTrue)
					So(logger.Desugar().Core().Enabled(zapcore.DebugLevel), ShouldBeFalse)
				})
			})

			Convey("When creating a logger with an invalid log file path", func() {
				logger, err := New("info", "/invalid/path/test.log", false, false)

				Convey("It should return an error", func() {
					So(err, ShouldNotBeNil)
					So(err.Error(), ShouldContainSubstring, "failed to create log directory")
					So(logger, ShouldBeNil)
				})
			})
		})

		Convey("Close method", func() {
			Convey("When closing a logger with console output only", func() {
				logger, err := New("info", "", false, false)
				So(err, ShouldBeNil)

				Convey("It should close without panic", func() {
					So(func() { logger.Close() }, ShouldNotPanic)
				})
			})
		})
	})
}

package logging

import (
	"github.com/sirupsen/logrus"
)

// CommandWrapper wraps one shell command so that every invocation gets a
// fresh LogData, a duration timing and a Start/Complete/Error log line.
func CommandWrapper(
	commandName string,
	log *logrus.Logger,
	command func(*LogData) error,
) func() error {
	return func() error {
		logData := NewLogData(log)
		logData.AddData("command", commandName)

		log.Debugf("Command.%v.Start", commandName)

		endTimer := logData.AddTiming("durationMs")
		err := command(logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Warnf("Command.%v.Error", commandName)
			return err
		}

		logData.Log().Infof("Command.%v.Complete", commandName)
		return nil
	}
}

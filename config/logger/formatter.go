// Package logger configures logrus for the eventwire tools.
package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// MessageTypeField is the log field that carries a message type name
const MessageTypeField = "message"

// MessageTypeFormatter is a logrus formatter that moves the message type
// field into a prefix for nicer human output.
type MessageTypeFormatter struct {
	Parent logrus.Formatter
}

// Format implements logrus.Formatter
func (f *MessageTypeFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if name, ok := entry.Data[MessageTypeField].(string); ok {
		entry.Message = fmt.Sprintf("[%-32s] %s", name, entry.Message)
		data := make(logrus.Fields, len(entry.Data))
		for k, v := range entry.Data {
			if k != MessageTypeField {
				data[k] = v
			}
		}
		entry.Data = data
	}
	return f.Parent.Format(entry)
}

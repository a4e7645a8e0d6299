package world

// MessageLog - журнал повествования для интерфейса. Держит ограниченную
// историю: старые сообщения вытесняются.
type MessageLog struct {
	messages []string
	capacity int
}

func NewMessageLog(capacity int) *MessageLog {
	if capacity < 1 {
		capacity = 1
	}
	return &MessageLog{capacity: capacity}
}

func (l *MessageLog) Add(message string) {
	l.messages = append(l.messages, message)
	if len(l.messages) > l.capacity {
		l.messages = l.messages[len(l.messages)-l.capacity:]
	}
}

// Recent возвращает до n последних сообщений, от старых к новым.
func (l *MessageLog) Recent(n int) []string {
	if n > len(l.messages) {
		n = len(l.messages)
	}
	return l.messages[len(l.messages)-n:]
}

func (l *MessageLog) Len() int { return len(l.messages) }

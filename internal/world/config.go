package world

import "time"

// Config - параметры симуляции. Значения по умолчанию дает NewConfig;
// командная строка может их переопределить.
type Config struct {
	// Seed генератора случайностей. Один и тот же seed дает один и
	// тот же мир.
	Seed int64

	// Размер генерируемых карт.
	MapWidth  int
	MapHeight int

	// Сколько сообщений держит журнал.
	MessageLogSize int
}

func NewConfig() *Config {
	return &Config{
		Seed:           time.Now().UnixNano(),
		MapWidth:       60,
		MapHeight:      30,
		MessageLogSize: 100,
	}
}

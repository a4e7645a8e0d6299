package logger

import "testing"

// Библиотечные пакеты пишут в Log на обычных путях (пустые цели событий,
// ход за край карты), поэтому он обязан работать и без Init в main.
func TestLogUsableWithoutInit(t *testing.T) {
	if Log == nil {
		t.Fatal("global logger is nil before Init")
	}
	// Не должно паниковать на экземпляре по умолчанию.
	Log.WithFields(map[string]interface{}{
		"component": "logger_test",
	}).Debug("default instance accepts entries")
}

// internal/event/types.go
package event

// Звуковые сигналы. Значения совпадают с именами сигналов.
const (
	Shoot     EventType = "shoot"      // игрок выстрелил
	Pop       EventType = "pop"        // враг уничтожен, Data — новый счёт
	Die       EventType = "die"        // игрок погиб, сброс
	WaveStart EventType = "wave-start" // началась новая волна, Data — номер волны
)

// Cues — все события, у которых есть звук.
var Cues = []EventType{Shoot, Pop, Die, WaveStart}

// CueFiles — имена звуковых файлов без расширения.
var CueFiles = map[EventType]string{
	Shoot:     "shoot",
	Pop:       "pop",
	Die:       "die",
	WaveStart: "new",
}

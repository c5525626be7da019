package shell

import (
	"time"

	"github.com/lixenwraith/termfolio/engine"
)

// Greeting returns the time-of-day salutation for t in its own location
// Friday from 18:00 through Saturday is the weekend
func Greeting(t time.Time) string {
	hour, day := t.Hour(), t.Weekday()

	if (day == time.Friday && hour >= 18) || day == time.Saturday {
		return "Shabbat Shalom! 🕯️ Farm mode activated"
	}

	switch {
	case hour < 6:
		return "Burning the midnight oil? 🌙"
	case hour < 9:
		return "Good morning! Getting kids ready? ☕"
	case hour < 12:
		return "Good morning! Time to break prod... I mean, build! 🚀"
	case hour < 17:
		return "Good afternoon! Peak productivity hours ⚡"
	case hour < 19:
		return "Good evening! Family time approaching 👪"
	case hour < 22:
		return "Good evening! Kids asleep? Back to coding? 🌆"
	default:
		return "Late night debugging? 🦉"
	}
}

// Greet reads the greeting for the current time of clock
func Greet(clock engine.Clock) string {
	return Greeting(clock.Now())
}

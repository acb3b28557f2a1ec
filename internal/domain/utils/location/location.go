package location

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	location *time.Location
	once     sync.Once
)

// Get returns the club's configured time zone, falling back to UTC when the
// setting is missing or invalid.
func Get() *time.Location {
	once.Do(func() {
		loc, err := time.LoadLocation(viper.GetString("settings.timezone"))
		if err != nil {
			loc = time.UTC
		}
		location = loc
	})
	return location
}

package dates

import (
	"time"

	"github.com/anthonyraymond/randomizer/pkg/logs"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"go.uber.org/zap"
)

var zoneNames = []string{
	"UTC",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Athens",
	"Europe/Moscow",
	"Africa/Cairo",
	"Africa/Johannesburg",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Pacific/Auckland",
	"America/Sao_Paulo",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Pacific/Honolulu",
}

func ZoneNames() []string {
	names := make([]string, len(zoneNames))
	copy(names, zoneNames)
	return names
}

// Zone picks one of ZoneNames. It falls back to UTC if the zone database can not resolve the pick.
func Zone(src randutils.Source) *time.Location {
	name := zoneNames[src.IntN(len(zoneNames))]
	loc, err := time.LoadLocation(name)
	if err != nil {
		logs.GetLogger().Warn("failed to load time zone, falling back to UTC", zap.String("zone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// WakingWindow is a profile's daily active-hours window derived from its
// wake and sleep clock times. When the sleep time is numerically earlier
// than the wake time the window crosses midnight and EffectiveSleepHour is
// normalized past 24 (e.g. wake 22:00, sleep 06:00 -> effective hour 30).
type WakingWindow struct {
	WakeHour           int
	WakeMinute         int
	SleepHour          int
	SleepMinute        int
	EffectiveSleepHour int
}

// Duration returns the number of waking hours available for distributing
// "times a day" doses.
func (w WakingWindow) Duration() int {
	return w.EffectiveSleepHour - w.WakeHour
}

// ResolveWakingWindow parses wake/sleep "HH:MM" strings into a WakingWindow.
func ResolveWakingWindow(wakeTime, sleepTime string) (WakingWindow, error) {
	wakeHour, wakeMinute, err := ParseClock(wakeTime)
	if err != nil {
		return WakingWindow{}, fmt.Errorf("wake time: %w", err)
	}

	sleepHour, sleepMinute, err := ParseClock(sleepTime)
	if err != nil {
		return WakingWindow{}, fmt.Errorf("sleep time: %w", err)
	}

	effective := sleepHour
	if sleepHour < wakeHour {
		effective = sleepHour + 24
	}

	return WakingWindow{
		WakeHour:           wakeHour,
		WakeMinute:         wakeMinute,
		SleepHour:          sleepHour,
		SleepMinute:        sleepMinute,
		EffectiveSleepHour: effective,
	}, nil
}

// ParseClock parses a 24-hour "HH:MM" wall-clock string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return hour, minute, nil
}

package storage

import (
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/alexander-akhmetov/clockwork/internal/content"
	"github.com/alexander-akhmetov/clockwork/internal/debug"
)

// Field paths in the state document.
const (
	keyContent          = "content"
	keyShowMenu         = "show_menu"
	keyNotification     = "notification"
	keyBlink            = "blink"
	keyAppTimeFormat    = "app_time_format"
	keyFooterAppTime    = "footer_app_time"
	keyStyle            = "style"
	keyWithDecis        = "with_decis"
	keyPomodoroPhase    = "pomodoro.phase"
	keyPomodoroRound    = "pomodoro.round"
	keyInitialWork      = "pomodoro.work.initial"
	keyCurrentWork      = "pomodoro.work.current"
	keyInitialPause     = "pomodoro.pause.initial"
	keyCurrentPause     = "pomodoro.pause.current"
	keyInitialCountdown = "countdown.initial"
	keyCurrentCountdown = "countdown.current"
	keyElapsedCountdown = "countdown.elapsed"
	keyCurrentTimer     = "timer.current"
	keyEventTarget      = "event.target"
	keyEventTitle       = "event.title"
	keyEventStart       = "event.start"
)

func encode(st State) ([]byte, error) {
	fields := []struct {
		path  string
		value any
	}{
		{keyContent, st.Content.String()},
		{keyShowMenu, st.ShowMenu},
		{keyNotification, st.Notification.String()},
		{keyBlink, st.Blink.String()},
		{keyAppTimeFormat, st.AppTimeFormat.String()},
		{keyFooterAppTime, st.FooterAppTime.String()},
		{keyStyle, st.Style.String()},
		{keyWithDecis, st.WithDecis},
		{keyPomodoroPhase, st.PomodoroPhase.String()},
		{keyPomodoroRound, st.PomodoroRound},
		{keyInitialWork, st.InitialWork.String()},
		{keyCurrentWork, st.CurrentWork.String()},
		{keyInitialPause, st.InitialPause.String()},
		{keyCurrentPause, st.CurrentPause.String()},
		{keyInitialCountdown, st.InitialCountdown.String()},
		{keyCurrentCountdown, st.CurrentCountdown.String()},
		{keyElapsedCountdown, st.ElapsedCountdown.String()},
		{keyCurrentTimer, st.CurrentTimer.String()},
		{keyEventTarget, st.Event.Target.Format(time.RFC3339)},
		{keyEventTitle, st.Event.Title},
		{keyEventStart, st.Event.Start.Format(time.RFC3339)},
	}

	doc := []byte("{}")
	var err error
	for _, f := range fields {
		doc, err = sjson.SetBytes(doc, f.path, f.value)
		if err != nil {
			return nil, err
		}
	}
	return pretty.Pretty(doc), nil
}

// decode reads every field of the document, keeping the default for
// fields that are missing or cannot be parsed.
func decode(doc gjson.Result, d State) State {
	st := d
	readParsed(doc, keyContent, &st.Content, content.ParseContent)
	readBool(doc, keyShowMenu, &st.ShowMenu)
	readParsed(doc, keyNotification, &st.Notification, content.ParseToggle)
	readParsed(doc, keyBlink, &st.Blink, content.ParseToggle)
	readParsed(doc, keyAppTimeFormat, &st.AppTimeFormat, content.ParseTimeFormat)
	readParsed(doc, keyFooterAppTime, &st.FooterAppTime, content.ParseToggle)
	readParsed(doc, keyStyle, &st.Style, content.ParseStyle)
	readBool(doc, keyWithDecis, &st.WithDecis)
	readParsed(doc, keyPomodoroPhase, &st.PomodoroPhase, content.ParsePhase)
	if r := doc.Get(keyPomodoroRound); r.Type == gjson.Number && r.Int() > 0 {
		st.PomodoroRound = int(r.Int())
	}
	readParsed(doc, keyInitialWork, &st.InitialWork, parseDuration)
	readParsed(doc, keyCurrentWork, &st.CurrentWork, parseDuration)
	readParsed(doc, keyInitialPause, &st.InitialPause, parseDuration)
	readParsed(doc, keyCurrentPause, &st.CurrentPause, parseDuration)
	readParsed(doc, keyInitialCountdown, &st.InitialCountdown, parseDuration)
	readParsed(doc, keyCurrentCountdown, &st.CurrentCountdown, parseDuration)
	readParsed(doc, keyElapsedCountdown, &st.ElapsedCountdown, parseDuration)
	readParsed(doc, keyCurrentTimer, &st.CurrentTimer, parseDuration)
	readParsed(doc, keyEventTarget, &st.Event.Target, parseTime)
	if r := doc.Get(keyEventTitle); r.Type == gjson.String {
		st.Event.Title = r.Str
	}
	readParsed(doc, keyEventStart, &st.Event.Start, parseTime)
	return st
}

func readParsed[T any](doc gjson.Result, path string, dst *T, parse func(string) (T, error)) {
	r := doc.Get(path)
	if !r.Exists() {
		return
	}
	if r.Type != gjson.String {
		debug.Logf("state: %s: expected a string, got %s", path, r.Raw)
		return
	}
	v, err := parse(r.Str)
	if err != nil {
		debug.Logf("state: %s: %v", path, err)
		return
	}
	*dst = v
}

func readBool(doc gjson.Result, path string, dst *bool) {
	r := doc.Get(path)
	if r.IsBool() {
		*dst = r.Bool()
	}
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return max(d, 0), nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}

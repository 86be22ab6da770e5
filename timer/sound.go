package timer

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/demilade/pomo/internal/sched"
)

// alertSound resolves the sound file configured for a session kind.
func (t *Timer) alertSound(kind sched.Kind) string {
	switch kind {
	case sched.ShortBreak:
		return t.Opts.ShortBreak.Sound
	case sched.LongBreak:
		return t.Opts.LongBreak.Sound
	default:
		return t.Opts.Work.Sound
	}
}

// playAlertSound plays the alert configured for the just-completed session
// and blocks until playback ends.
func (t *Timer) playAlertSound(completed sched.Kind) {
	sound := t.alertSound(completed)
	if sound == "" {
		return
	}

	stream, err := prepSoundStream(sound)
	if err != nil {
		slog.Error("unable to play sound", slog.Any("error", err))
		return
	}

	defer stream.Close()

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	speaker.Clear()
}

// prepSoundStream decodes the sound file and initialises the speaker for
// its sample rate.
func prepSoundStream(sound string) (beep.StreamSeekCloser, error) {
	f, err := os.Open(sound)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch filepath.Ext(sound) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, errInvalidSoundFormat.Fmt(sound)
	}

	if err != nil {
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return nil, err
	}

	if err := stream.Seek(0); err != nil {
		return nil, err
	}

	return stream, nil
}

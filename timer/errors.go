package timer

import "github.com/demilade/pomo/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
	}

	errStatusUnreadable = &apperr.Error{
		Message: "unable to read the timer status file",
	}
)

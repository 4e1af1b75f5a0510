package trainer

import (
	"bytes"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/mmo/internal/apperr"
)

var errInvalidSound = &apperr.Error{
	Message: "unable to decode chime sound",
}

// Chime plays a short wav sound through the default audio device.
type Chime struct {
	initErr error
	data    []byte
	once    sync.Once
}

// NewChime returns a chime for the wav encoded in data.
func NewChime(data []byte) *Chime {
	return &Chime{data: data}
}

func (c *Chime) decode() (beep.StreamSeekCloser, beep.Format, error) {
	stream, format, err := wav.Decode(bytes.NewReader(c.data))
	if err != nil {
		return nil, beep.Format{}, errInvalidSound.Wrap(err)
	}

	return stream, format, nil
}

// Play starts the chime and returns without waiting for it to finish. The
// speaker is initialised on first use with the chime's sample rate.
func (c *Chime) Play() error {
	stream, format, err := c.decode()
	if err != nil {
		return err
	}

	bufferSize := 10

	c.once.Do(func() {
		c.initErr = speaker.Init(
			format.SampleRate,
			format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	if c.initErr != nil {
		_ = stream.Close()
		return c.initErr
	}

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		_ = stream.Close()
	})))

	return nil
}

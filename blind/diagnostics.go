package blind

import (
	"github.com/rs/zerolog"
)

const redactedPlaceholder = "[redacted]"

// diagnostics is the opt-in debug channel. Secret fields are replaced by
// a placeholder unless revealSecrets is set.
type diagnostics struct {
	log           zerolog.Logger
	revealSecrets bool
}

type field struct {
	key    string
	value  func() []byte
	secret bool
}

func public(key string, value func() []byte) field {
	return field{key: key, value: value}
}

func secret(key string, value func() []byte) field {
	return field{key: key, value: value, secret: true}
}

func (d *diagnostics) enabled() bool {
	return d.log.GetLevel() <= zerolog.DebugLevel && zerolog.GlobalLevel() <= zerolog.DebugLevel
}

func (d *diagnostics) debug(step string, fields ...field) {
	if !d.enabled() {
		return
	}
	ev := d.log.Debug().Str("step", step)
	for _, f := range fields {
		if f.secret && !d.revealSecrets {
			ev = ev.Str(f.key, redactedPlaceholder)
			continue
		}
		ev = ev.Hex(f.key, f.value())
	}
	ev.Msg("blind signature step")
}

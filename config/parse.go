package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/open"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var ErrNoValue = errors.New("no value given")

type check func(any) error

func oneOf(options ...string) check {
	return func(v any) error {
		if s, _ := v.(string); lo.Contains(options, s) {
			return nil
		}
		return fmt.Errorf("expected one of %s", strings.Join(options, ", "))
	}
}

func duration(v any) error {
	s, _ := v.(string)
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("expected a duration like 3s or 500ms")
	}
	if d < 0 {
		return errors.New("duration must not be negative")
	}
	return nil
}

func atLeast(min int) check {
	return func(v any) error {
		if n, _ := v.(int); n < min {
			return fmt.Errorf("expected a number not lower than %d", min)
		}
		return nil
	}
}

func webLink(v any) error {
	s, _ := v.(string)
	_, err := open.Validate(s)
	return err
}

func hostPort(v any) error {
	s, _ := v.(string)
	_, _, err := net.SplitHostPort(s)
	return err
}

func logLevel(v any) error {
	s, _ := v.(string)
	_, err := logrus.ParseLevel(s)
	return err
}

var checks = map[string]check{
	key.CatalogURL:              webLink,
	key.CatalogRetries:          atLeast(0),
	key.CatalogTimeout:          duration,
	key.CatalogHomeLimit:        atLeast(0),
	key.CatalogCacheTTL:         duration,
	key.StorageBackend:          oneOf(constant.StorageFile, constant.StorageSQLite),
	key.HistoryLimit:            atLeast(1),
	key.IconsVariant:            oneOf(icon.AvailableVariants()...),
	key.TUICardWidth:            atLeast(8),
	key.TUIReleaseGap:           duration,
	key.TUILongPress:            duration,
	key.PlayerControlsTimeout:   duration,
	key.PlayerNextPromptSeconds: atLeast(1),
	key.PlayerSeekStep:          atLeast(1),
	key.RemoteAddr:              hostPort,
	key.LogsLevel:               logLevel,
}

// Parse converts command line words to a value of the field's type and
// checks it against the rules of the key.
func (f *Field) Parse(words []string) (any, error) {
	if len(words) == 0 {
		return nil, ErrNoValue
	}

	var (
		v   any
		err error
	)

	switch f.Value.(type) {
	case string:
		v = words[0]
	case int:
		v, err = strconv.Atoi(words[0])
	case bool:
		v, err = strconv.ParseBool(words[0])
	case []string:
		v = words
	default:
		return nil, fmt.Errorf("%s: unsupported type %T", f.Key, f.Value)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: invalid %s value %q", f.Key, f.typeName(), words[0])
	}

	if c, ok := checks[f.Key]; ok {
		if err := c(v); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Key, err)
		}
	}

	return v, nil
}

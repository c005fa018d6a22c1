package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/abrezinsky/scorecards/internal/errors"
	"github.com/abrezinsky/scorecards/internal/models"
)

// competitionFile is the TOML shape of a competition description:
//
//	name = "Spring Open"
//	qr_codes = true
//
//	[[events]]
//	name = "Kilominx"
//	format = "Mo3"
//	rounds = [{ cards = 40, cutoff = 60 }, { cards = 12, limit = "2:00" }]
type competitionFile struct {
	Name          string      `toml:"name"`
	CuttingGuides *bool       `toml:"cutting_guides"`
	QRCodes       *bool       `toml:"qr_codes"`
	Events        []eventFile `toml:"events"`
}

type eventFile struct {
	Name   string      `toml:"name"`
	Format string      `toml:"format"`
	Rounds []roundFile `toml:"rounds"`
}

type roundFile struct {
	Cards  int         `toml:"cards"`
	Cutoff timeSetting `toml:"cutoff"`
	Limit  timeSetting `toml:"limit"`
}

// timeSetting accepts seconds as a TOML integer, float or string
type timeSetting string

func (t *timeSetting) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*t = timeSetting(v)
	case int64:
		*t = timeSetting(strconv.FormatInt(v, 10))
	case float64:
		*t = timeSetting(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("time setting must be a number or string, got %T", v)
	}
	return nil
}

// LoadCompetition reads a competition description from a TOML file.
// Every listed event is selected; defaultQR applies when qr_codes is absent.
func LoadCompetition(path string, defaultQR bool) (models.Competition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return models.Competition{}, errors.NotFoundf("competition file %s not found", path)
		}
		return models.Competition{}, errors.Wrap(err, errors.ErrInternal, "failed to read competition file")
	}
	return DecodeCompetition(data, defaultQR)
}

// DecodeCompetition parses a TOML competition description
func DecodeCompetition(data []byte, defaultQR bool) (models.Competition, error) {
	var f competitionFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return models.Competition{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid competition file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return models.Competition{}, errors.InvalidInputf("unknown competition keys: %s", strings.Join(keys, ", "))
	}

	comp := models.NewCompetition(f.Name)
	comp.QRCodes = defaultQR
	if f.QRCodes != nil {
		comp.QRCodes = *f.QRCodes
	}
	if f.CuttingGuides != nil {
		comp.CuttingGuides = *f.CuttingGuides
	}

	for _, e := range f.Events {
		ev := models.Event{
			Name:     strings.TrimSpace(e.Name),
			Selected: true,
			Format:   models.ParseFormat(e.Format),
		}
		for _, r := range e.Rounds {
			ev.Rounds = append(ev.Rounds, models.NewRound(r.Cards, string(r.Cutoff), string(r.Limit)))
		}
		comp.Events = append(comp.Events, ev.Normalize())
	}
	return comp, nil
}

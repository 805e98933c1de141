package script

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"stagechat/internal/domain"
)

// fileScript is the on-disk YAML shape of an authored script.
type fileScript struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Topic    string        `yaml:"topic"`
	Personas []filePersona `yaml:"personas"`
	Messages []fileMessage `yaml:"messages"`
}

type filePersona struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Avatar      string `yaml:"avatar"`
	Archetype   string `yaml:"archetype"`
}

type fileMessage struct {
	ID      string `yaml:"id"`
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
	// PostDelaySeconds accepts fractional seconds, matching how scripts
	// are authored upstream.
	PostDelaySeconds float64 `yaml:"post_delay_seconds"`
	ReplyTo          string  `yaml:"reply_to"`
}

// Load reads one authored script from a YAML file.
func Load(path string) (*domain.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script file: %w", err)
	}

	var fs fileScript
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parsing script file %s: %w", filepath.Base(path), err)
	}
	if len(fs.Messages) == 0 {
		return nil, fmt.Errorf("script file %s: %w", filepath.Base(path), domain.ErrEmptyScript)
	}

	sc := &domain.Script{
		ID:    fs.ID,
		Name:  fs.Name,
		Topic: fs.Topic,
	}
	if sc.ID == "" {
		base := filepath.Base(path)
		sc.ID = base[:len(base)-len(filepath.Ext(base))]
	}
	if sc.Name == "" {
		sc.Name = sc.ID
	}

	for _, p := range fs.Personas {
		sc.Personas = append(sc.Personas, domain.Persona{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Avatar:      p.Avatar,
			Archetype:   domain.ArchetypeFromString(p.Archetype),
		})
	}

	for i, m := range fs.Messages {
		id := m.ID
		if id == "" {
			id = fmt.Sprintf("m%d", i+1)
		}
		sc.Messages = append(sc.Messages, domain.ScriptedMessage{
			ID:        id,
			SpeakerID: m.Speaker,
			Text:      m.Text,
			PostDelay: time.Duration(m.PostDelaySeconds * float64(time.Second)),
			ReplyToID: m.ReplyTo,
		})
	}

	sc.Normalize()
	return sc, nil
}

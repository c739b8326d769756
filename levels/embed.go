package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/voicejumper/common"
	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var LevelsFS embed.FS

const embeddedName = "levels.yaml"

// CharacterSize is the side of the character's square hitbox.
const CharacterSize = 30

var (
	ErrEmptyTable = errors.New("levels: table has no levels")
	ErrEmptyLevel = errors.New("levels: level has no platforms")
)

type Table struct {
	Levels []Level `yaml:"levels"`
}

type Level struct {
	Name      string        `yaml:"name"`
	Platforms []common.Rect `yaml:"platforms"`
}

// Load decodes the level table compiled into the binary.
func Load() (Table, error) {
	data, err := LevelsFS.ReadFile(embeddedName)
	if err != nil {
		return Table{}, fmt.Errorf("levels: read embedded table: %w", err)
	}
	return Parse(data)
}

// MustLoad is Load for callers that cannot run without the built-in table.
func MustLoad() Table {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

// LoadFile decodes a level table from disk, for overrides and hot reload.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("levels: read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

func (t Table) Validate() error {
	if len(t.Levels) == 0 {
		return ErrEmptyTable
	}
	for i, lvl := range t.Levels {
		if len(lvl.Platforms) == 0 {
			return fmt.Errorf("level %d (%q): %w", i, lvl.Name, ErrEmptyLevel)
		}
		for j, p := range lvl.Platforms {
			if p.Width <= 0 || p.Height <= 0 {
				return fmt.Errorf("levels: level %d platform %d has non-positive size %vx%v", i, j, p.Width, p.Height)
			}
		}
	}
	return nil
}

func (t Table) Len() int {
	return len(t.Levels)
}

// Level returns the level at index, clamped into the table.
func (t Table) Level(index int) Level {
	return t.Levels[t.Clamp(index)]
}

func (t Table) Clamp(index int) int {
	return common.ClampInt(index, 0, len(t.Levels)-1)
}

// Spawn is the character position resting on top of the first platform,
// horizontally at its center.
func (l Level) Spawn() (float64, float64) {
	start := l.Platforms[0]
	return start.CenterX(), start.Y - CharacterSize
}

func (l Level) Goal() common.Rect {
	return l.Platforms[len(l.Platforms)-1]
}

// GoalX is the column the character has to pass to finish the level.
func (l Level) GoalX() float64 {
	return l.Goal().CenterX()
}

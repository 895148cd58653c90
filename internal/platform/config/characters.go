package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"artifactsbot/internal/app/tasks"
)

var ErrInvalidCharacters = errors.New("invalid characters config")

// File is the characters file:
//
//	characters:
//	  - name: alice
//	    tasks:
//	      - name: MineCopper
//	      - name: DepositInventory
//	        condition: FullInventory
type File struct {
	Characters []CharacterConfig `yaml:"characters"`
}

type CharacterConfig struct {
	Name  string       `yaml:"name"`
	Tasks []TaskConfig `yaml:"tasks"`
}

type TaskConfig struct {
	Name      string `yaml:"name"`
	Condition string `yaml:"condition,omitempty"`
}

func LoadCharacters(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read characters config: %w", err)
	}
	return ParseCharacters(data)
}

func ParseCharacters(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalidCharacters, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

func (f File) Validate() error {
	if len(f.Characters) == 0 {
		return fmt.Errorf("%w: no characters", ErrInvalidCharacters)
	}
	seen := map[string]bool{}
	for i, c := range f.Characters {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("%w: character %d has no name", ErrInvalidCharacters, i+1)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate character %q", ErrInvalidCharacters, name)
		}
		seen[name] = true
		if len(c.Tasks) == 0 {
			return fmt.Errorf("%w: character %q has no tasks", ErrInvalidCharacters, name)
		}
		for j, t := range c.Tasks {
			if _, err := tasks.ParseName(t.Name); err != nil {
				return fmt.Errorf("%w: character %q task %d: %v", ErrInvalidCharacters, name, j+1, err)
			}
			if _, err := tasks.ParseCondition(t.Condition); err != nil {
				return fmt.Errorf("%w: character %q task %d: %v", ErrInvalidCharacters, name, j+1, err)
			}
		}
	}
	return nil
}

func (f File) Names() []string {
	out := make([]string, 0, len(f.Characters))
	for _, c := range f.Characters {
		out = append(out, strings.TrimSpace(c.Name))
	}
	return out
}

func (c CharacterConfig) StepSpecs() []tasks.StepSpec {
	out := make([]tasks.StepSpec, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		out = append(out, tasks.StepSpec{Task: t.Name, Condition: t.Condition})
	}
	return out
}

// Package seed loads the initial admin dataset that every store resets to.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

//go:embed seed.yaml
var fixture []byte

// Seed is the full initial dataset.
type Seed struct {
	Orders        []model.Order        `yaml:"orders"`
	Affiliates    []model.Affiliate    `yaml:"affiliates"`
	Coupons       []model.Coupon       `yaml:"coupons"`
	Notifications []model.Notification `yaml:"notifications"`
	Products      []model.Product      `yaml:"products"`
	Services      []model.Service      `yaml:"services"`
	Users         []model.User         `yaml:"users"`
}

// Load reads the dataset from path, or the embedded fixture when path is empty.
func Load(path string) (*Seed, error) {
	if path == "" {
		return Decode(bytes.NewReader(fixture))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a YAML dataset and checks record identifiers.
func Decode(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Seed
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Seed) validate() error {
	checks := []struct {
		name string
		ids  []string
	}{
		{"orders", ids(s.Orders, func(o model.Order) string { return o.ID })},
		{"affiliates", ids(s.Affiliates, func(a model.Affiliate) string { return a.ID })},
		{"coupons", ids(s.Coupons, func(c model.Coupon) string { return c.ID })},
		{"notifications", ids(s.Notifications, func(n model.Notification) string { return n.ID })},
		{"products", ids(s.Products, func(p model.Product) string { return p.ID })},
		{"services", ids(s.Services, func(v model.Service) string { return v.ID })},
		{"users", ids(s.Users, func(u model.User) string { return u.ID })},
	}

	for _, c := range checks {
		seen := make(map[string]struct{}, len(c.ids))
		for i, id := range c.ids {
			if id == "" {
				return fmt.Errorf("seed %s[%d]: missing id", c.name, i)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("seed %s: duplicate id %q", c.name, id)
			}
			seen[id] = struct{}{}
		}
	}

	for _, a := range s.Affiliates {
		seen := make(map[string]struct{}, len(a.Withdrawals))
		for _, w := range a.Withdrawals {
			if _, dup := seen[w.ID]; dup || w.ID == "" {
				return fmt.Errorf("seed affiliate %s: invalid withdrawal id %q", a.ID, w.ID)
			}
			seen[w.ID] = struct{}{}
		}
	}
	return nil
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}

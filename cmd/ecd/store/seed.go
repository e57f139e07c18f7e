package store

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Seed is the initial content of the store, loaded at boot.
type Seed struct {
	// Admin is an account created with is_admin set. Optional.
	Admin *SeedAdmin `yaml:"admin"`

	// Products are catalog entries to be registered.
	Products []SeedProduct `yaml:"products"`
}

type SeedAdmin struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SeedProduct struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
	ImageUrl    string `yaml:"imageUrl"`
}

func LoadSeed(filepath string) (*Seed, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	var seed Seed
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

// ApplySeed loads seed into the store. It is idempotent over restarts:
// an already registered admin or an already known product name is left
// as it is.
//
// hash converts the admin's plain password to its stored form.
func (s *Store) ApplySeed(seed *Seed, hash func(password string) (string, error)) error {
	if seed == nil {
		return nil
	}

	if a := seed.Admin; a != nil {
		if _, err := s.UserByName(a.Username); err != nil {
			hashed, err := hash(a.Password)
			if err != nil {
				return fmt.Errorf("cannot hash the seed admin password: %w", err)
			}
			u, err := s.NewUser(a.Username, hashed)
			if err != nil {
				return err
			}
			if _, err := s.SetAdmin(u.Id, true); err != nil {
				return err
			}
		}
	}

	known := map[string]bool{}
	for _, p := range s.Products(0, 0) {
		known[p.Name] = true
	}

	for _, sp := range seed.Products {
		if known[sp.Name] {
			continue
		}
		price, err := decimal.NewFromString(sp.Price)
		if err != nil {
			return fmt.Errorf("broken price of seed product %s: %w", sp.Name, err)
		}
		s.AddProduct(ProductSpec{
			Name:        sp.Name,
			Description: sp.Description,
			Price:       price,
			Stock:       sp.Stock,
			ImageUrl:    sp.ImageUrl,
		})
	}

	return nil
}

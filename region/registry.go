package region

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Registry holds the regions offered by the dashboard in display order
type Registry struct {
	order   []string
	regions map[string]Region
}

// NewRegistry - registry of World, South America and extra
func NewRegistry(extra ...Region) (*Registry, error) {
	r := &Registry{
		regions: make(map[string]Region),
	}

	all := append([]Region{World, SouthAmerica}, extra...)
	for _, region := range all {
		if err := region.validate(); nil != err {
			return nil, err
		}
		if _, ok := r.regions[region.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRegion, region.ID)
		}
		r.regions[region.ID] = region
		r.order = append(r.order, region.ID)
	}

	return r, nil
}

// Get returns the region of id
func (r *Registry) Get(id string) (Region, error) {
	region, ok := r.regions[id]
	if !ok {
		return Region{}, fmt.Errorf("%w: %s", ErrUnknownRegion, id)
	}
	return region, nil
}

// List returns every region in display order
func (r *Registry) List() []Region {
	list := make([]Region, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.regions[id])
	}
	return list
}

type definitions struct {
	Regions []Region `yaml:"regions"`
}

// Decode reads region definitions from yaml
func Decode(in io.Reader) ([]Region, error) {
	data, err := ioutil.ReadAll(in)
	if nil != err {
		return nil, err
	}

	var d definitions
	if err := yaml.UnmarshalStrict(data, &d); nil != err {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRegion, err)
	}

	return d.Regions, nil
}

// LoadFile reads region definitions from a yaml file
func LoadFile(path string) ([]Region, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

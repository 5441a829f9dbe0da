// Public domain.

package outfit

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/FusRoman/outfit/astro"
	"github.com/FusRoman/outfit/mpc"
	"github.com/FusRoman/outfit/obs"
)

// Outfit is the estimation environment: the ephemeris provider, the
// astrometric error model, and a registry of observing sites.  The
// ephemeris and error model are fixed at construction; the site
// registry may grow and is safe for concurrent use.
type Outfit struct {
	eph      astro.Ephemeris
	errModel ErrorModel

	mu    sync.RWMutex
	sites map[string]*obs.Observer
}

// New constructs an environment.  ephemSelector names the ephemeris
// provider as documented at astro.Open; errorModel names the error
// model as documented at ParseErrorModel.
func New(ephemSelector, errorModel string) (*Outfit, error) {
	eph, err := astro.Open(ephemSelector)
	if err != nil {
		return nil, err
	}
	return &Outfit{
		eph:      eph,
		errModel: ParseErrorModel(errorModel),
		sites:    make(map[string]*obs.Observer),
	}, nil
}

// Ephemeris returns the environment's ephemeris provider.
func (o *Outfit) Ephemeris() astro.Ephemeris { return o.eph }

// ErrorModel returns the environment's astrometric error model.
func (o *Outfit) ErrorModel() ErrorModel { return o.errModel }

// AddObserver registers a site under a code, replacing any site
// previously registered under it.
func (o *Outfit) AddObserver(code string, site *obs.Observer) {
	o.mu.Lock()
	o.sites[code] = site
	o.mu.Unlock()
}

// ObserverFromMPCCode returns the site registered under an MPC code.
func (o *Outfit) ObserverFromMPCCode(code string) (*obs.Observer, error) {
	o.mu.RLock()
	site, ok := o.sites[code]
	o.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("observatory code %s not registered", code)
	}
	if site == nil {
		return nil, fmt.Errorf("observatory code %s has no fixed site", code)
	}
	return site, nil
}

// LoadObservatories merges an MPC obscode.dat file into the registry.
func (o *Outfit) LoadObservatories(ocdFile string) error {
	reg, err := mpc.ReadObscodeDat(ocdFile)
	if err != nil {
		return err
	}
	o.mu.Lock()
	for code, site := range reg {
		o.sites[code] = site
	}
	o.mu.Unlock()
	return nil
}

// ShowObservatories formats the registry, one site per line in code
// order.
func (o *Outfit) ShowObservatories() string {
	o.mu.RLock()
	codes := make([]string, 0, len(o.sites))
	for code := range o.sites {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	var b strings.Builder
	for _, code := range codes {
		site := o.sites[code]
		if site == nil {
			fmt.Fprintf(&b, "%s  (no fixed site)\n", code)
			continue
		}
		fmt.Fprintf(&b, "%s  %-40s  lon %8.4f°  lat %8.4f°\n",
			code, site.Name,
			site.Longitude*180/math.Pi,
			site.Latitude*180/math.Pi)
	}
	o.mu.RUnlock()
	if b.Len() == 0 {
		return "No observatories registered.\n"
	}
	return b.String()
}

package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/iotaledger/flagset/ierrors"
)

// ErrNotSupported is returned by the provider methods that a provider can not serve.
var ErrNotSupported = ierrors.New("not supported by the provider")

// lowerPosflag implements a pflag command line provider with lower cased keys.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a commandline flags provider that returns
// a nested map[string]interface{} of the flags where the nesting hierarchy
// of keys is defined by delim.
//
// Flags that were not changed on the command line only contribute their
// default value if the key does not exist in ko yet.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]any, error) {
	mp := make(map[string]any)
	p.flagset.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		var v any
		switch f.Value.Type() {
		case "int":
			i, _ := p.flagset.GetInt(f.Name)
			v = int64(i)
		case "int64":
			v, _ = p.flagset.GetInt64(f.Name)
		case "uint":
			i, _ := p.flagset.GetUint(f.Name)
			v = uint64(i)
		case "uint64":
			v, _ = p.flagset.GetUint64(f.Name)
		case "bool":
			v, _ = p.flagset.GetBool(f.Name)
		case "stringSlice":
			v, _ = p.flagset.GetStringSlice(f.Name)
		default:
			v = f.Value.String()
		}

		mp[key] = v
	})

	return maps.Unflatten(mp, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ierrors.Wrap(ErrNotSupported, "ReadBytes")
}

// Watch is not supported by the pflag provider.
func (p *lowerPosflag) Watch(_ func(event any, err error)) error {
	return ierrors.Wrap(ErrNotSupported, "Watch")
}

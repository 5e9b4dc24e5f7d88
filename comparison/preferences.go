// This file is part of Gophersort.
//
// Gophersort is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophersort is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophersort.  If not, see <https://www.gnu.org/licenses/>.

package comparison

import (
	"github.com/jetsetilly/gophersort/algorithms"
	"github.com/jetsetilly/gophersort/arrays"
	"github.com/jetsetilly/gophersort/paths"
	"github.com/jetsetilly/gophersort/prefs"
	"github.com/jetsetilly/gophersort/scheduler"
)

// Preferences for the comparison.
type Preferences struct {
	dsk *prefs.Disk

	Left         prefs.String
	Right        prefs.String
	ElementCount prefs.Int
	Distribution prefs.String
	Speed        prefs.Int
	Sound        prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// DefaultPreferencesPath returns the path to the preferences file in the
// resource directory.
func DefaultPreferencesPath() (string, error) {
	return paths.ResourcePath("", prefs.DefaultPrefsFile)
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If the path is empty the preferences are never loaded or saved.
//
// Values are set to their defaults. Call Load() to read values from the
// preferences file and the command line stack.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.ElementCount.SetRange(arrays.MinCount, arrays.MaxCount)
	p.Speed.SetRange(scheduler.MinSpeed, scheduler.MaxSpeed)

	validAlgorithm := func(v prefs.Value) error {
		_, err := algorithms.Parse(v.(string))
		return err
	}
	p.Left.SetHookPre(validAlgorithm)
	p.Right.SetHookPre(validAlgorithm)

	p.Distribution.SetHookPre(func(v prefs.Value) error {
		_, err := arrays.ParseDistribution(v.(string))
		return err
	})

	p.SetDefaults()

	if path == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefsValue{
		"sorting.left":         &p.Left,
		"sorting.right":        &p.Right,
		"sorting.elementCount": &p.ElementCount,
		"sorting.distribution": &p.Distribution,
		"sorting.speed":        &p.Speed,
		"sorting.sound":        &p.Sound,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// the methods required by prefs.Disk.Add()
type prefsValue interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Left.Set(algorithms.Bubble.Short())
	p.Right.Set(algorithms.Quick.Short())
	p.ElementCount.Set(30)
	p.Distribution.Set(arrays.Random.String())
	p.Speed.Set(5)
	p.Sound.Set(true)
}

// Load preferences from disk. Values that cannot be used are replaced by the
// current value and the file is saved.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(true)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

func (p *Preferences) algorithm(pn Panel) *prefs.String {
	if pn == Right {
		return &p.Right
	}
	return &p.Left
}

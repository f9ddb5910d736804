package race

// Die faces run from MinDie to MaxDie.
const (
	MinDie = 1
	MaxDie = 3
)

// Dice records the value each camel rolled this leg. Zero means unrolled.
type Dice [CamelCount]int

// Rolled returns the camel's die value and whether it has rolled.
func (d Dice) Rolled(name CamelName) (int, bool) {
	i := name.Index()
	if i < 0 || d[i] == 0 {
		return 0, false
	}
	return d[i], true
}

// Record stores a roll for the camel.
func (d *Dice) Record(name CamelName, value int) {
	d[name.Index()] = value
}

// Available returns the camels that have not rolled, in canonical order.
func (d Dice) Available() []CamelName {
	var names []CamelName
	for i, v := range d {
		if v == 0 {
			names = append(names, CamelNames[i])
		}
	}
	return names
}

// Full reports whether every camel has rolled.
func (d Dice) Full() bool {
	for _, v := range d {
		if v == 0 {
			return false
		}
	}
	return true
}

// Count returns how many camels have rolled.
func (d Dice) Count() int {
	n := 0
	for _, v := range d {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear marks every camel as unrolled.
func (d *Dice) Clear() {
	*d = Dice{}
}

package profile

// PenaltyRule is one entry in a profile's ordered routability table: a way
// carrying tags[Key] == Value is routable with cost multiplier Penalty.
// Rules are scanned in order; the first match wins.
type PenaltyRule struct {
	Key     string
	Value   string
	Penalty float32
}

// accessVerdict classifies an access tag value.
type accessVerdict int

const (
	verdictUnknown accessVerdict = iota
	verdictAllowed
	verdictDenied
)

var allowedAccessValues = map[string]bool{
	"yes":        true,
	"designated": true,
	"permissive": true,
}

var deniedAccessValues = map[string]bool{
	"no":        true,
	"private":   true,
	"customers": true,
}

func classifyAccessValue(v string) accessVerdict {
	switch {
	case allowedAccessValues[v]:
		return verdictAllowed
	case deniedAccessValues[v]:
		return verdictDenied
	default:
		return verdictUnknown
	}
}

// Profile is an immutable description of how one movement mode interprets
// OSM tags. Construct built-ins via the package-level Car, Bus, Bicycle,
// Foot, Railway, Tram and Subway values, or build a custom one with New.
type Profile struct {
	name                string
	penalties           []PenaltyRule
	accessKeys          []string // least to most specific
	disallowMotorroad   bool
	disableRestrictions bool
	foot                bool
}

// Option configures a Profile built with New.
type Option func(*Profile)

// WithPenalties sets the ordered routability table.
func WithPenalties(rules ...PenaltyRule) Option {
	return func(p *Profile) { p.penalties = append([]PenaltyRule(nil), rules...) }
}

// WithAccessKeys sets the access tag keys consulted, least to most specific.
func WithAccessKeys(keys ...string) Option {
	return func(p *Profile) { p.accessKeys = append([]string(nil), keys...) }
}

// WithDisallowMotorroad rejects ways tagged motorroad=yes when set.
func WithDisallowMotorroad() Option {
	return func(p *Profile) { p.disallowMotorroad = true }
}

// WithDisableRestrictions makes the compiler ignore every turn restriction
// relation for this profile.
func WithDisableRestrictions() Option {
	return func(p *Profile) { p.disableRestrictions = true }
}

// WithFootRules marks this as the foot profile, triggering the directional
// override described in compile's directionality phase (oneway vehicle
// restrictions do not bind pedestrians).
func WithFootRules() Option {
	return func(p *Profile) { p.foot = true }
}

// New builds a custom Profile.
func New(name string, opts ...Option) *Profile {
	p := &Profile{name: name}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the profile's identifier, e.g. "car".
func (p *Profile) Name() string { return p.name }

// IsFoot reports whether this profile uses foot directionality rules.
func (p *Profile) IsFoot() bool { return p.foot }

// DisallowMotorroad reports whether motorroad=yes ways are rejected.
func (p *Profile) DisallowMotorroad() bool { return p.disallowMotorroad }

// DisableRestrictions reports whether turn restrictions are ignored for
// this profile.
func (p *Profile) DisableRestrictions() bool { return p.disableRestrictions }

// Routable scans the penalty table in order and returns the first matching
// rule's penalty. ok is false if no rule matches (the way is not routable
// under this profile).
func (p *Profile) Routable(tags map[string]string) (penalty float32, ok bool) {
	for _, rule := range p.penalties {
		if tags[rule.Key] == rule.Value {
			return rule.Penalty, true
		}
	}
	return 0, false
}

// Accessible walks the access keys least to most specific; the last key
// present on tags with a recognised verdict wins. A way with no recognised
// access tags, or only unrecognised values, is allowed (conservative for
// routing per spec).
func (p *Profile) Accessible(tags map[string]string) bool {
	verdict := verdictAllowed
	for _, key := range p.accessKeys {
		v, present := tags[key]
		if !present {
			continue
		}
		if cv := classifyAccessValue(v); cv != verdictUnknown {
			verdict = cv
		}
	}
	return verdict != verdictDenied
}

// MotorroadRejected reports whether tags describe a motorroad=yes way that
// this profile refuses to use.
func (p *Profile) MotorroadRejected(tags map[string]string) bool {
	return p.disallowMotorroad && tags["motorroad"] == "yes"
}

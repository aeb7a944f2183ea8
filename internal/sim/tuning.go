package sim

import "math"

// Tuning holds every numeric parameter of the simulation. All values
// can be overridden from a YAML file; zero-valued fields keep their
// defaults when loaded through internal/config.
type Tuning struct {
	Gravity float64 `yaml:"gravity"`

	// Ship
	ShipRadius        float64 `yaml:"ship_radius"`
	ShipMass          float64 `yaml:"ship_mass"`
	ShipThrust        float64 `yaml:"ship_thrust"`          // units/sec² along the forward axis
	ShipSpinAccel     float64 `yaml:"ship_spin_accel"`      // radians/sec² under rotate input
	ShipSpinMax       float64 `yaml:"ship_spin_max"`        // clamp on angular velocity magnitude
	ShipSpinDecel     float64 `yaml:"ship_spin_decel"`      // radians/sec² toward zero without input
	ShipFireDelay     float64 `yaml:"ship_fire_delay"`      // seconds between shots
	ShipStartAltitude float64 `yaml:"ship_start_altitude"`  // spawn height above the planet

	// Bullet
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletRadius   float64 `yaml:"bullet_radius"`
	BulletMass     float64 `yaml:"bullet_mass"`
	BulletLifetime float64 `yaml:"bullet_lifetime"`

	// Planet
	PlanetStartRadius  float64 `yaml:"planet_start_radius"`
	PlanetStartMass    float64 `yaml:"planet_start_mass"`
	RadiusConsumeScale float64 `yaml:"radius_consume_scale"`
	MassConsumeScale   float64 `yaml:"mass_consume_scale"`

	// Collapse
	CollapseMassThreshold float64 `yaml:"collapse_mass_threshold"`
	CollapseDuration      float64 `yaml:"collapse_duration"`
	CollapseMinRadius     float64 `yaml:"collapse_min_radius"`
	CollapseFinalMass     float64 `yaml:"collapse_final_mass"`

	// Asteroids
	AsteroidSpawnDistance float64 `yaml:"asteroid_spawn_distance"`
	AsteroidLifetime      float64 `yaml:"asteroid_lifetime"`
	AsteroidRadiusMin     float64 `yaml:"asteroid_radius_min"`
	AsteroidRadiusMax     float64 `yaml:"asteroid_radius_max"`
	AsteroidMassMin       float64 `yaml:"asteroid_mass_min"`
	AsteroidMassMax       float64 `yaml:"asteroid_mass_max"`
	AsteroidSpeedMin      float64 `yaml:"asteroid_speed_min"`
	AsteroidSpeedMax      float64 `yaml:"asteroid_speed_max"`
	SpawnDelayMin         float64 `yaml:"spawn_delay_min"`
	SpawnDelayMax         float64 `yaml:"spawn_delay_max"`
	SpawnInitialDelay     float64 `yaml:"spawn_initial_delay"`
	SpawnHeadingOffset    float64 `yaml:"spawn_heading_offset"` // radians off the spawn angle; tangential approach

	// Drag
	DragConstant     float64 `yaml:"drag_constant"`
	DragRadiusFactor float64 `yaml:"drag_radius_factor"`

	// Fracture
	FractureMinRadius    float64 `yaml:"fracture_min_radius"`
	FractureCount        int     `yaml:"fracture_count"`
	FractureRadiusFactor float64 `yaml:"fracture_radius_factor"`
	FractureMassFactor   float64 `yaml:"fracture_mass_factor"`
	FractureSpeedMin     float64 `yaml:"fracture_speed_min"`
	FractureSpeedMax     float64 `yaml:"fracture_speed_max"`

	// Scoring
	ScoreMin int `yaml:"score_min"`
	ScoreMax int `yaml:"score_max"`

	// Cosmetics
	TrailLifetime      float64 `yaml:"trail_lifetime"`
	TrailAlpha         float64 `yaml:"trail_alpha"`
	ExplosionLifetime  float64 `yaml:"explosion_lifetime"`
	ExplosionMaxRadius float64 `yaml:"explosion_max_radius"`
	PulseRate          float64 `yaml:"pulse_rate"`
	PulseMassFactor    float64 `yaml:"pulse_mass_factor"`
	PulseSize          float64 `yaml:"pulse_size"`

	// Game over
	GraceDuration float64 `yaml:"grace_duration"`
}

// DefaultTuning returns the stock parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity: 250.0,

		ShipRadius:        10.0,
		ShipMass:          10.0,
		ShipThrust:        75.0,
		ShipSpinAccel:     12.0,
		ShipSpinMax:       4.0,
		ShipSpinDecel:     6.0,
		ShipFireDelay:     0.1,
		ShipStartAltitude: 300.0,

		BulletSpeed:    300.0,
		BulletRadius:   1.0,
		BulletMass:     10.0,
		BulletLifetime: 3.0,

		PlanetStartRadius:  30.0,
		PlanetStartMass:    500.0,
		RadiusConsumeScale: 0.3,
		MassConsumeScale:   5.0,

		CollapseMassThreshold: 2000.0,
		CollapseDuration:      3.0,
		CollapseMinRadius:     5.0,
		CollapseFinalMass:     10000.0,

		AsteroidSpawnDistance: 640.0,
		AsteroidLifetime:      60.0,
		AsteroidRadiusMin:     10.0,
		AsteroidRadiusMax:     20.0,
		AsteroidMassMin:       10.0,
		AsteroidMassMax:       20.0,
		AsteroidSpeedMin:      20.0,
		AsteroidSpeedMax:      60.0,
		SpawnDelayMin:         2.0,
		SpawnDelayMax:         4.0,
		SpawnInitialDelay:     5.0,
		SpawnHeadingOffset:    2 * math.Pi / 3.5,

		DragConstant:     300.0,
		DragRadiusFactor: 5.0,

		FractureMinRadius:    4.0,
		FractureCount:        3,
		FractureRadiusFactor: 0.3,
		FractureMassFactor:   0.3,
		FractureSpeedMin:     10.0,
		FractureSpeedMax:     30.0,

		ScoreMin: 0,
		ScoreMax: 100,

		TrailLifetime:      3.0,
		TrailAlpha:         0.2,
		ExplosionLifetime:  0.5,
		ExplosionMaxRadius: 40.0,
		PulseRate:          0.5,
		PulseMassFactor:    1.0015,
		PulseSize:          30.0,

		GraceDuration: 2.0,
	}
}

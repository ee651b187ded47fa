// Package config provides YAML-based configuration loading for the
// quest simulation: world layout, entity tuning, combat numbers and
// session progression thresholds.
package config

// QuestConfig contains all tuning for a quest session.
type QuestConfig struct {
	World       WorldConfig       `yaml:"world"`
	Entities    EntitiesConfig    `yaml:"entities"`
	Combat      CombatConfig      `yaml:"combat"`
	Companion   CompanionConfig   `yaml:"companion"`
	Obstacles   ObstaclesConfig   `yaml:"obstacles"`
	Progression ProgressionConfig `yaml:"progression"`
}

// WorldConfig defines room geometry in world units.
type WorldConfig struct {
	RoomWidth  float64 `yaml:"room_width"`
	RoomHeight float64 `yaml:"room_height"`
	RoomGap    float64 `yaml:"room_gap"`
}

// EntitiesConfig defines sizes, speeds and per-room counts.
type EntitiesConfig struct {
	PlayerSize    float64 `yaml:"player_size"`
	CompanionSize float64 `yaml:"companion_size"`
	EnemySize     float64 `yaml:"enemy_size"`
	ResourceSize  float64 `yaml:"resource_size"`

	PlayerSpeed    float64 `yaml:"player_speed"`
	CompanionSpeed float64 `yaml:"companion_speed"`
	EnemySpeed     float64 `yaml:"enemy_speed"`

	EnemiesRoom1     int `yaml:"enemies_room1"`
	EnemiesRoom2     int `yaml:"enemies_room2"`
	ResourcesPerRoom int `yaml:"resources_per_room"`
}

// CombatConfig defines interaction radii and per-event amounts.
// Enemy damage is expressed per second and divided by the tick rate.
type CombatConfig struct {
	DetectionRadius float64 `yaml:"detection_radius"`
	AttackRadius    float64 `yaml:"attack_radius"`
	NotifyRadius    float64 `yaml:"notify_radius"`

	PlayerDamage         float64 `yaml:"player_damage"`
	CompanionDamage      float64 `yaml:"companion_damage"`
	EnemyDamagePerSecond float64 `yaml:"enemy_damage_per_second"`

	ResourceHeal  float64 `yaml:"resource_heal"`
	CompanionHeal float64 `yaml:"companion_heal"`
}

// CompanionConfig defines the follow-distance envelope and attack pacing.
type CompanionConfig struct {
	IdealDistance       float64 `yaml:"ideal_distance"`
	MinDistance         float64 `yaml:"min_distance"`
	AttackCooldownTicks int     `yaml:"attack_cooldown_ticks"`
}

// ObstaclesConfig defines procedural obstacle placement per room.
type ObstaclesConfig struct {
	Size     float64 `yaml:"size"`
	MinCount int     `yaml:"min_count"`
	MaxCount int     `yaml:"max_count"`
}

// ProgressionConfig defines the session gates: what opens the door and
// what counts as finishing the study run.
type ProgressionConfig struct {
	DoorResources       int     `yaml:"door_resources"`
	ExitKills           int     `yaml:"exit_kills"`
	ExitResources       int     `yaml:"exit_resources"`
	DoorCooldownSeconds float64 `yaml:"door_cooldown_seconds"`
}

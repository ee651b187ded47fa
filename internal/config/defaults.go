package config

import (
	_ "embed"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// DefaultQuestConfig returns the default quest configuration.
func DefaultQuestConfig() QuestConfig {
	return QuestConfig{
		World: WorldConfig{
			RoomWidth:  600,
			RoomHeight: 600,
			RoomGap:    150,
		},
		Entities: EntitiesConfig{
			PlayerSize:    30,
			CompanionSize: 24,
			EnemySize:     30,
			ResourceSize:  24,

			PlayerSpeed:    4.0,
			CompanionSpeed: 2.5,
			EnemySpeed:     1.5,

			EnemiesRoom1:     7,
			EnemiesRoom2:     8,
			ResourcesPerRoom: 2,
		},
		Combat: CombatConfig{
			DetectionRadius: 250,
			AttackRadius:    60,
			NotifyRadius:    150,

			PlayerDamage:         100,
			CompanionDamage:      20,
			EnemyDamagePerSecond: 20,

			ResourceHeal:  10,
			CompanionHeal: 10,
		},
		Companion: CompanionConfig{
			IdealDistance:       60,
			MinDistance:         40,
			AttackCooldownTicks: 30,
		},
		Obstacles: ObstaclesConfig{
			Size:     40,
			MinCount: 3,
			MaxCount: 8,
		},
		Progression: ProgressionConfig{
			DoorResources:       2,
			ExitKills:           8,
			ExitResources:       4,
			DoorCooldownSeconds: 0.5,
		},
	}
}

package sim

import "time"

// Bounding boxes in world pixels.
var (
	playerSize      = Vec{30, 50}
	enemySize       = Vec{30, 50}
	pigSize         = Vec{40, 40}
	obstacleSize    = Vec{60, 100}
	collectibleSize = Vec{30, 30}
)

const (
	playerSpeed     = 10.0 // pixels per movement poll
	playerMaxHealth = 100
	playerRadius    = 15.0
	stickRange      = 70.0
	attackTolerance = 1.0 // radians either side of facing
	attackDuration  = 300 * time.Millisecond
	attackHitDelay  = 150 * time.Millisecond // stick is extended halfway through the swing
	playerHitDamage = 20
	killReward      = 10
	dropChance      = 0.3
	dropCoinShare   = 0.7

	enemyMaxHealth    = 100
	enemySpeedDay     = 1.5
	enemySpeedNight   = 2.5
	enemyDetectDay    = 200.0
	enemyDetectNight  = 250.0
	enemyChaseFloor   = 50.0
	enemyAttackRange  = 60.0
	enemyAttackChance = 0.02
	enemyDamage       = 10
	enemyRespawnDelay = 5 * time.Second

	knockbackOffset   = 15.0 // visual only
	knockbackDuration = 300 * time.Millisecond

	pigMaxHealth   = 30
	pigSpeed       = 1.0
	pigFleeRadius  = 150.0
	pigFleeMul     = 2.0
	pigTurnChance  = 0.01
	pigCorpseDelay = 3 * time.Second
	pigKnockback   = 10.0
	pigDropOffset  = 10.0
	pigSpawnMin    = 100 // frames
	pigSpawnSpan   = 300

	wanderMin  = 20 // frames
	wanderSpan = 100

	obstacleClearance    = 150.0
	maxPlacementAttempts = 100

	ambientSpawnChance = 0.001
	ambientCoinShare   = 0.7
	dawnHealthChance   = 0.3

	healthPackHeal = 20
	coinValue      = 5
	baconHeal      = 10
	baconCoins     = 10

	impactDuration   = 500 * time.Millisecond
	textDuration     = time.Second
	noticeDuration   = 3 * time.Second
	movePollInterval = 16 * time.Millisecond
)

// odds are the per-roll probabilities a session draws against.
type odds struct {
	drop        float64 // collectible drop on an enemy kill
	dropCoin    float64 // share of drops that are coins
	ambient     float64 // ambient collectible spawn, per frame
	ambientCoin float64 // share of ambient and initial spawns that are coins
	enemyAttack float64 // enemy attack within range, per frame
}

var defaultOdds = odds{
	drop:        dropChance,
	dropCoin:    dropCoinShare,
	ambient:     ambientSpawnChance,
	ambientCoin: ambientCoinShare,
	enemyAttack: enemyAttackChance,
}

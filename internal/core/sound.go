package core

// Sound identifies an audio cue the game asks the audio sink to play.
type Sound int

const (
	SoundNone Sound = iota
	SoundFire
	SoundEnemyExplosion
	SoundPlayerExplosion
	SoundMusic // Looping background track
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundEnemyExplosion:
		return "enemy-explosion"
	case SoundPlayerExplosion:
		return "player-explosion"
	case SoundMusic:
		return "music"
	default:
		return "none"
	}
}

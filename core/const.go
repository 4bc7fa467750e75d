package core

type CharacterType string

const (
	CharacterTypeNPC     CharacterType = "npc"
	CharacterTypeAlly    CharacterType = "ally"
	CharacterTypeEnemy   CharacterType = "enemy"
	CharacterTypeNeutral CharacterType = "neutral"
)

var CharacterTypes = []CharacterType{
	CharacterTypeNPC,
	CharacterTypeAlly,
	CharacterTypeEnemy,
	CharacterTypeNeutral,
}

const (
	DefaultRegionColor  = "#3b82f6"
	DefaultUploadDir    = "uploads"
	DefaultUploadPrefix = "/backend/uploads"
	DefaultInternalURL  = "http://backend:5000"
	DefaultPublicURL    = "http://localhost:5000"
)

const (
	EventTypeRegion = "region"
	EventTypeMap    = "map"

	EventActionCreate = "create"
	EventActionUpdate = "update"
	EventActionDelete = "delete"
)

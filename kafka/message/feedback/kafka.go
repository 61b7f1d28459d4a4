package feedback

const (
	EnvCommandTopic = "COMMAND_TOPIC_FEEDBACK"

	CommandPlay = "PLAY"

	CueTransferComplete = "transfer_complete"
)

type Command[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

type PlayCommandBody struct {
	Cue string `json:"cue"`
}

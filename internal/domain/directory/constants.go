package directory

const (
	StatusOnline  = "online"
	StatusOffline = "offline"

	PositionManager = "manager"
)

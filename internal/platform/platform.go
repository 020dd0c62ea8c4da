package platform

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
}

type PlatformWindowWrapper interface {
	Show()
	Close()
	ShouldClose() bool
	EndFrame()
	PollEvents() []Event
	FramebufferSize() (int, int)
}

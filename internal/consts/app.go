package consts

const (
	ApplicationName    = "Forever Captured"
	ApplicationVersion = "1.2.0"
)

package common

import (
	"os"
	"path"
)

type CommonFlags struct {
	Profile      string `flag:"profile" help:"profile name to use"`
	ProfileStore string `flag:"profile-store" help:"path to profile store file"`
}

type commonFlagDetection struct {
	home string
}

type CommonFlagDetectionOption func(*commonFlagDetection) *commonFlagDetection

func WithHome(home string) CommonFlagDetectionOption {
	return func(opt *commonFlagDetection) *commonFlagDetection {
		opt.home = home
		return opt
	}
}

// Flags detects the default common flag values.
//
// The profile store lives at ~/.ec/profile; the profile name defaults to
// "default", overridable with the EC_PROFILE environment variable.
func Flags(opt ...CommonFlagDetectionOption) (CommonFlags, error) {
	detparam := commonFlagDetection{
		home: "",
	}
	for _, o := range opt {
		detparam = *o(&detparam)
	}

	home := detparam.home
	if home == "" {
		_home, err := os.UserHomeDir()
		if err != nil {
			_home = ""
		}
		home = _home
	}

	profile := os.Getenv("EC_PROFILE")
	if profile == "" {
		profile = "default"
	}

	return CommonFlags{
		Profile:      profile,
		ProfileStore: path.Join(home, ".ec", "profile"),
	}, nil
}

package cli

import (
	"fmt"

	"github.com/diillson/sales-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
   ____        _              ____            _     _                         _
  / ___|  __ _| | ___  ___   |  _ \  __ _ ___| |__ | |__   ___   __ _ _ __ __| |
  \___ \ / _' | |/ _ \/ __|  | | | |/ _' / __| '_ \| '_ \ / _ \ / _' | '__/ _' |
   ___) | (_| | |  __/\__ \  | |_| | (_| \__ \ | | | |_) | (_) | (_| | | | (_| |
  |____/ \__,_|_|\___||___/  |____/ \__,_|___/_| |_|_.__/ \___/ \__,_|_|  \__,_|
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Sales Dashboard CLI (v%s)", formattedVersion)))
	if versionStr != "" && versionStr != version.Version {
		fmt.Println(blue(fmt.Sprintf("Build: %s", versionStr)))
	}
}

package ui

import (
	"fmt"

	"github.com/varsilias/openclaw-setup/internal/osdetect"
)

const welcomeMD = `## Welcome!

We are here to help you get started with OpenClaw. This tool will help your computer work better for you.
You don't need to be a computer expert.
`

const privacyMD = `🔒 **Privacy First:** This website and the assistant below do not save your personal data.
Everything disappears when you close this window.
`

func instructionsMD(o osdetect.Offer) string {
	md := fmt.Sprintf("**Start Instructions:**\n\n1. Click Download\n2. Open the file %s\n", o.Hint)
	if o.OS == osdetect.Mac || o.OS == osdetect.Linux {
		md += "\nIf double-clicking does nothing, open Terminal and type:\n\n```sh\nsh ~/Downloads/mac_install.sh\n```\n"
	}
	return md
}

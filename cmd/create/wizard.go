package create

import (
	"github.com/stencil-dev/stencil-cli/internal/constants"
	"github.com/stencil-dev/stencil-cli/internal/prompt"
)

// runWizard fills in any inputs the user did not supply as flags. Flags that
// were set are never asked again.
func (h *handler) runWizard(inputs *Inputs) error {
	if inputs.ProjectName == "" {
		if err := h.promptName(inputs); err != nil {
			return err
		}
	}
	if inputs.ProjectType == "" {
		if err := h.promptChoice("Project type", []string{"vite", "nextjs"}, &inputs.ProjectType); err != nil {
			return err
		}
	}
	if inputs.PackageManager == "" {
		if err := h.promptChoice("Package manager", []string{"npm", "pnpm"}, &inputs.PackageManager); err != nil {
			return err
		}
	}
	if inputs.Language == "" {
		if err := h.promptChoice("Language", []string{"ts", "js", "ts-sw", "js-sw"}, &inputs.Language); err != nil {
			return err
		}
	}
	if inputs.Deployment == "" {
		if err := h.promptChoice("Deployment target", []string{"none", "vercel", "netlify", "render"}, &inputs.Deployment); err != nil {
			return err
		}
	}

	toggles := []struct {
		label string
		value *bool
	}{
		{"Add linting (ESLint + Prettier)?", &inputs.Linting},
		{"Add testing (Jest + Testing Library)?", &inputs.Testing},
		{"Add a CI workflow?", &inputs.CI},
		{"Add a security policy?", &inputs.Security},
		{"Add git hooks (husky + lint-staged)?", &inputs.GitHooks},
		{"Initialize a git repository?", &inputs.GitInit},
	}
	for _, t := range toggles {
		if *t.value {
			continue
		}
		if err := h.promptToggle(t.label, t.value); err != nil {
			return err
		}
	}
	return nil
}

func (h *handler) promptName(inputs *Inputs) error {
	return prompt.SimplePrompt(
		h.stdin,
		"Project name (\".\" for the current directory)",
		func(input string) error {
			if input == "" {
				input = constants.DefaultProjectName
			}
			inputs.ProjectName = input
			return nil
		},
	)
}

func (h *handler) promptChoice(label string, choices []string, dest *string) error {
	return prompt.SelectPrompt(h.stdin, label, choices, func(choice string) error {
		*dest = choice
		return nil
	})
}

func (h *handler) promptToggle(label string, dest *bool) error {
	answer, err := prompt.YesNoPrompt(h.stdin, label)
	if err != nil {
		return err
	}
	*dest = answer
	return nil
}

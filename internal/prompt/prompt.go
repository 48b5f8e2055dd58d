package prompt

import (
	"io"

	"github.com/manifoldco/promptui"
)

func SimplePrompt(reader io.Reader, promptText string, handler func(input string) error) error {
	prompt := promptui.Prompt{
		Label: promptText,
		Stdin: io.NopCloser(reader),
	}

	result, err := prompt.Run()
	if err != nil {
		return err
	}

	return handler(result)
}

func SelectPrompt(reader io.Reader, promptText string, choices []string, handler func(choice string) error) error {
	prompt := promptui.Select{
		Label: promptText,
		Items: choices,
		Stdin: io.NopCloser(reader),
	}

	_, result, err := prompt.Run()
	if err != nil {
		return err
	}

	return handler(result)
}

func YesNoPrompt(reader io.Reader, promptText string) (bool, error) {
	prompt := promptui.Select{
		Label: promptText,
		Items: []string{"Yes", "No"},
		Stdin: io.NopCloser(reader),
	}

	_, result, err := prompt.Run()
	if err != nil {
		return false, err
	}

	return result == "Yes", nil
}

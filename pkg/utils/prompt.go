package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/aegirsim/missile-simulations/pkg/simulation"
)

// PromptForParameters collects values for every declared parameter. Each
// parameter can be pre-set through an MSLSIM_<NAME> environment variable,
// which becomes the prompt default, or the whole prompt pass can be skipped
// with MSLSIM_SKIP_PROMPTS=true for automation.
func PromptForParameters(params []simulation.Parameter) (map[string]interface{}, error) {
	result := make(map[string]interface{})

	skipPrompts := os.Getenv("MSLSIM_SKIP_PROMPTS") == "true"

	for _, param := range params {
		envValue := os.Getenv("MSLSIM_" + strings.ToUpper(param.Name))
		if envValue != "" {
			if parsed, err := parseValue(envValue, param.Type); err == nil {
				if skipPrompts {
					result[param.Name] = parsed
					continue
				}
				param.Default = parsed
			}
		}

		if skipPrompts {
			if param.Default != nil {
				result[param.Name] = param.Default
				continue
			}
			if param.Required {
				return nil, fmt.Errorf("required parameter %s not provided and no default available", param.Name)
			}
			continue
		}

		value, err := promptForParameter(param)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", param.Name, err)
		}
		result[param.Name] = value
	}

	return result, nil
}

// parseValue converts a raw string to the parameter's declared type.
func parseValue(value, paramType string) (interface{}, error) {
	switch paramType {
	case "integer":
		return strconv.Atoi(value)
	case "float":
		return strconv.ParseFloat(value, 64)
	case "string":
		return value, nil
	case "boolean":
		return strconv.ParseBool(value)
	case "duration":
		return time.ParseDuration(value)
	default:
		return nil, fmt.Errorf("unsupported parameter type: %s", paramType)
	}
}

func promptForParameter(param simulation.Parameter) (interface{}, error) {
	switch param.Type {
	case "boolean":
		return promptBoolean(param)
	case "string":
		if len(param.Options) > 0 {
			return promptSelect(param)
		}
		return promptText(param)
	case "integer", "float", "duration":
		return promptTyped(param)
	default:
		return nil, fmt.Errorf("unsupported parameter type: %s", param.Type)
	}
}

func defaultString(param simulation.Parameter) string {
	if param.Default == nil {
		return ""
	}
	return fmt.Sprintf("%v", param.Default)
}

func promptBoolean(param simulation.Parameter) (bool, error) {
	defaultBool := false
	switch v := param.Default.(type) {
	case bool:
		defaultBool = v
	case string:
		defaultBool = v == "true" || v == "yes" || v == "1"
	}

	var result bool
	prompt := &survey.Confirm{
		Message: param.Description,
		Default: defaultBool,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

func promptSelect(param simulation.Parameter) (string, error) {
	var result string
	prompt := &survey.Select{
		Message: param.Description,
		Options: param.Options,
		Default: defaultString(param),
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func promptText(param simulation.Parameter) (string, error) {
	prompt := &survey.Input{
		Message: param.Description,
		Default: defaultString(param),
	}

	var validators []survey.Validator
	if param.Required {
		validators = append(validators, survey.Required)
	}

	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.ComposeValidators(validators...))); err != nil {
		return "", err
	}
	return result, nil
}

// promptTyped prompts for integer, float, and duration parameters: text
// input validated and converted through parseValue, with range checks for
// the numeric kinds.
func promptTyped(param simulation.Parameter) (interface{}, error) {
	message := param.Description
	if param.Type == "duration" {
		message += " (e.g., 5m, 1h30m, 30s)"
	}

	prompt := &survey.Input{
		Message: message,
		Default: defaultString(param),
	}

	var raw string
	validator := func(val interface{}) error {
		str, _ := val.(string)
		parsed, err := parseValue(str, param.Type)
		if err != nil {
			return fmt.Errorf("invalid %s value", param.Type)
		}
		return checkRange(parsed, param)
	}
	if err := survey.AskOne(prompt, &raw, survey.WithValidator(survey.Required), survey.WithValidator(validator)); err != nil {
		return nil, err
	}

	return parseValue(raw, param.Type)
}

func checkRange(value interface{}, param simulation.Parameter) error {
	v, ok := toFloat64(value)
	if !ok {
		return nil
	}

	if param.Min != nil {
		if minBound, ok := toFloat64(param.Min); ok && v < minBound {
			return fmt.Errorf("value must be at least %g", minBound)
		}
	}
	if param.Max != nil {
		if maxBound, ok := toFloat64(param.Max); ok && v > maxBound {
			return fmt.Errorf("value must be at most %g", maxBound)
		}
	}
	return nil
}

func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

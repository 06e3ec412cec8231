package helpers

import (
	"fmt"
	"os"

	"cota/src/settings"

	"go.uber.org/zap"
)

// ReadSaveFile reads an entire save file into memory as text.
func ReadSaveFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("error reading save file %s: %w", filePath, err)
	}
	return string(data), nil
}

// WriteSaveFile overwrites filePath with text. The file is truncated
// and rewritten in place; a crash between the truncate and the write
// can corrupt the file.
func WriteSaveFile(filePath, text string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating save file %s: %w", filePath, err)
	}

	// Ensure the file is closed when the function exits
	defer file.Close()

	fileLen, err := file.WriteString(text)
	if err != nil {
		return fmt.Errorf("error writing save file %s: %w", filePath, err)
	}

	if fileLen != len(text) {
		return fmt.Errorf("error writing save file %s: wrote %d bytes, expected %d", filePath, fileLen, len(text))
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func FileExists(filename string, logger *zap.SugaredLogger) bool {
	args := settings.GetSettings()

	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			if args.Debug && args.Verbose {
				logger.Infof("File does not exist: %s", filename)
			}
			return false // File does not exist
		}

		logger.Infof("Error checking file %s for existence: %s", filename, err)
		return false // Some other error occurred
	}

	return !info.IsDir() // Return true if it's not a directory
}

package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	apperrors "github.com/FitFinder/fitfinder-backend/errors"
	"github.com/gin-gonic/gin"
)

// bindJSONOrError binds JSON request body and sets a validation error if
// binding fails. Returns true if binding succeeded, false if an error was
// set (caller should return).
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}

// idParamOrError parses a numeric path parameter. Returns false if the
// parameter is not an integer (error was set).
func idParamOrError(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_path_parameter",
			fmt.Sprintf("%s must be an integer, got %q", name, raw)))
		return 0, false
	}
	return id, true
}

// formFileOrError extracts the uploaded "file" form field. Returns false if
// it is missing (error was set).
func formFileOrError(c *gin.Context) (*multipart.FileHeader, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("missing_file", "a 'file' form field must be provided"))
		return nil, false
	}
	return fileHeader, true
}

// decodeJSONLines reads an uploaded file of newline-delimited JSON objects,
// unmarshalling each non-empty line into a fresh record from newRecord and
// passing it to collect. Stops at the first malformed line.
func decodeJSONLines(fileHeader *multipart.FileHeader, newRecord func() interface{}, collect func(interface{})) error {
	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record := newRecord()
		if err := json.Unmarshal([]byte(line), record); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		collect(record)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return nil
}

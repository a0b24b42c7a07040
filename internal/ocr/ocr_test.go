package ocr

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semreerol/Receipt-Scanner/internal/logging"
	"github.com/semreerol/Receipt-Scanner/internal/parsererror"
)

// fakeRunner records invocations and plays back canned responses per command.
type fakeRunner struct {
	calls   [][]string
	outputs map[string][]byte
	errs    map[string]error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if err := f.errs[name]; err != nil {
		return nil, []byte("boom"), err
	}
	if name == "pdftoppm" {
		// simulate the page image pdftoppm would leave behind
		prefix := args[len(args)-1]
		if err := os.WriteFile(prefix+"-1.png", []byte("png"), 0600); err != nil {
			return nil, nil, err
		}
	}
	return f.outputs[name], nil, nil
}

func TestRecognizeImage(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{"tesseract": []byte(altoSample)}}
	engine := NewEngineWithRunner(DefaultConfig(), runner, &logging.MockLogger{})

	doc, err := engine.Recognize(context.Background(), "fis.jpg")
	require.NoError(t, err)

	assert.Equal(t, "MİGROS TİCARET\n01-02-2024\nTOPLAM *12,00", doc.Text)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"tesseract", "fis.jpg", "stdout", "-l", "tur", "alto"}, runner.calls[0])
}

func TestRecognizePDFRasterizesFirst(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{"tesseract": []byte(altoSample)}}
	engine := NewEngineWithRunner(DefaultConfig(), runner, &logging.MockLogger{})

	doc, err := engine.Recognize(context.Background(), "fis.pdf")
	require.NoError(t, err)
	assert.Equal(t, "MİGROS TİCARET\n01-02-2024\nTOPLAM *12,00", doc.Text)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "pdftoppm", runner.calls[0][0])
	assert.Contains(t, runner.calls[0], "-png")
	assert.Equal(t, "tesseract", runner.calls[1][0])
	assert.Equal(t, filepath.Ext(runner.calls[1][1]), ".png")
}

func TestRecognizeTesseractFailure(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{"tesseract": errors.New("exit status 1")}}
	engine := NewEngineWithRunner(DefaultConfig(), runner, &logging.MockLogger{})

	_, err := engine.Recognize(context.Background(), "fis.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract failed")
}

func TestRecognizeBytesEmptyUpload(t *testing.T) {
	engine := NewEngineWithRunner(DefaultConfig(), &fakeRunner{}, &logging.MockLogger{})

	_, err := engine.RecognizeBytes(context.Background(), nil, ".jpg")
	var emptyErr *parsererror.EmptyInputError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestRecognizeBytesWritesTempFile(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{"tesseract": []byte(altoSample)}}
	engine := NewEngineWithRunner(DefaultConfig(), runner, &logging.MockLogger{})

	doc, err := engine.RecognizeBytes(context.Background(), []byte("image-bytes"), "jpg")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Text)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, ".jpg", filepath.Ext(runner.calls[0][1]))
}

package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"math"
	"os"
	"sort"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
	"golang.org/x/image/draw"
)

// ModelMetadata describes the exported classifier artifact.
type ModelMetadata struct {
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
}

// ONNXClassifier runs species inference through an exported ONNX model.
type ONNXClassifier struct {
	session      *ort.AdvancedSession
	meta         ModelMetadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]

	// The session reuses its input/output tensors, so runs are serialized.
	mu sync.Mutex
}

// NewONNXClassifier loads the model artifact and its metadata. Errors here
// are expected at the call site to mean "run without a model", not a fatal
// condition.
func NewONNXClassifier(modelPath, metadataPath string) (*ONNXClassifier, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize onnx environment: %w", err)
	}

	metaRaw, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("read model metadata: %w", err)
	}

	var meta ModelMetadata
	if err := json.Unmarshal(metaRaw, &meta); err != nil {
		return nil, fmt.Errorf("parse model metadata: %w", err)
	}
	if len(meta.Classes) == 0 {
		return nil, fmt.Errorf("model metadata lists no classes")
	}
	if meta.ImageSize <= 0 {
		return nil, fmt.Errorf("model metadata has invalid image size %d", meta.ImageSize)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &ONNXClassifier{
		session:      session,
		meta:         meta,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Classify runs inference and returns the top label with its probability
// plus the three highest-ranked candidates.
func (c *ONNXClassifier) Classify(ctx context.Context, img image.Image) (string, float64, []Alternative, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, nil, err
	}

	input := c.preprocess(img)

	c.mu.Lock()
	copy(c.inputTensor.GetData(), input)
	if err := c.session.Run(); err != nil {
		c.mu.Unlock()
		return "", 0, nil, fmt.Errorf("inference failed: %w", err)
	}
	output := make([]float32, len(c.outputTensor.GetData()))
	copy(output, c.outputTensor.GetData())
	c.mu.Unlock()

	probs := softmax(output)

	type scored struct {
		idx  int
		prob float64
	}
	ranked := make([]scored, 0, len(c.meta.Classes))
	for i := range c.meta.Classes {
		if i < len(probs) {
			ranked = append(ranked, scored{idx: i, prob: probs[i]})
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].prob > ranked[j].prob })

	top := make([]Alternative, 0, 3)
	for _, s := range ranked {
		if len(top) == 3 {
			break
		}
		top = append(top, Alternative{Label: c.meta.Classes[s.idx], Confidence: s.prob})
	}
	if len(top) == 0 {
		return "", 0, nil, fmt.Errorf("model produced no output")
	}

	return top[0].Label, top[0].Confidence, top, nil
}

// preprocess resizes to the model's expected square input and lays pixels
// out channel-first, normalized to [0,1].
func (c *ONNXClassifier) preprocess(img image.Image) []float32 {
	size := c.meta.ImageSize
	resized := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Over, nil)

	data := make([]float32, 3*size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			i := y*size + x
			data[i] = float32(r) / 65535.0
			data[size*size+i] = float32(g) / 65535.0
			data[2*size*size+i] = float32(b) / 65535.0
		}
	}
	return data
}

// Close releases the ONNX session and tensors.
func (c *ONNXClassifier) Close() {
	if c.inputTensor != nil {
		c.inputTensor.Destroy()
	}
	if c.outputTensor != nil {
		c.outputTensor.Destroy()
	}
	if c.session != nil {
		c.session.Destroy()
	}
	ort.DestroyEnvironment()
}

func softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}
	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}
	sum := 0.0
	out := make([]float64, len(logits))
	for i, v := range logits {
		out[i] = math.Exp(float64(v - maxLogit))
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

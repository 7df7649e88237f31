package model

import (
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// LinearModel is an ImpactModel backed by fitted linear (ridge) coefficients
type LinearModel struct {
	layout       *FeatureLayout
	intercept    float64
	coefficients *mat.VecDense
}

// CoefficientsFile is the on-disk format of a fitted linear model
type CoefficientsFile struct {
	Intercept         float64            `yaml:"intercept"`
	TotalRating       float64            `yaml:"totalRating"`
	IsHome            float64            `yaml:"isHome"`
	ReferenceOpponent string             `yaml:"referenceOpponent,omitempty"`
	Players           map[string]float64 `yaml:"players"`
	Opponents         map[string]float64 `yaml:"opponents,omitempty"`
}

// PlayerImpact is a single player's fitted coefficient
type PlayerImpact struct {
	PlayerID string
	Impact   float64
}

// NewLinearModel creates a model from a layout and coefficients in layout order
func NewLinearModel(layout *FeatureLayout, intercept float64, coefficients []float64) (*LinearModel, error) {
	if len(coefficients) != layout.Width() {
		return nil, fmt.Errorf("coefficient count %d does not match layout width %d", len(coefficients), layout.Width())
	}

	// Copy so later changes to the caller's slice don't leak into the model
	data := make([]float64, len(coefficients))
	copy(data, coefficients)

	return &LinearModel{
		layout:       layout,
		intercept:    intercept,
		coefficients: mat.NewVecDense(len(data), data),
	}, nil
}

// LoadLinearModel loads fitted coefficients from a YAML file
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var cf CoefficientsFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}

	return cf.Build()
}

// Build converts the file representation into a LinearModel.
// Player and opponent columns are sorted by name.
func (cf *CoefficientsFile) Build() (*LinearModel, error) {
	if len(cf.Players) == 0 {
		return nil, fmt.Errorf("model has no player coefficients")
	}

	players := sortedKeys(cf.Players)
	opponents := sortedKeys(cf.Opponents)

	layout, err := NewFeatureLayout(players, opponents, cf.ReferenceOpponent)
	if err != nil {
		return nil, err
	}

	coefficients := make([]float64, 0, layout.Width())
	for _, p := range players {
		coefficients = append(coefficients, cf.Players[p])
	}
	coefficients = append(coefficients, cf.TotalRating, cf.IsHome)
	for _, o := range opponents {
		coefficients = append(coefficients, cf.Opponents[o])
	}

	return NewLinearModel(layout, cf.Intercept, coefficients)
}

// Layout returns the model's feature layout
func (m *LinearModel) Layout() *FeatureLayout {
	return m.layout
}

// Predict implements ImpactModel
func (m *LinearModel) Predict(fc FeatureContext) (float64, error) {
	x, err := m.layout.Vector(fc)
	if err != nil {
		return 0, err
	}
	return m.PredictVector(x)
}

// PredictVector predicts from a raw positional feature vector
func (m *LinearModel) PredictVector(x []float64) (float64, error) {
	if len(x) != m.coefficients.Len() {
		return 0, fmt.Errorf("feature vector has %d columns, model expects %d", len(x), m.coefficients.Len())
	}
	return m.intercept + mat.Dot(mat.NewVecDense(len(x), x), m.coefficients), nil
}

// PlayerImpacts returns the player indicator coefficients, highest first
func (m *LinearModel) PlayerImpacts() []PlayerImpact {
	impacts := make([]PlayerImpact, len(m.layout.Players))
	for i, p := range m.layout.Players {
		impacts[i] = PlayerImpact{PlayerID: p, Impact: m.coefficients.AtVec(i)}
	}

	sort.SliceStable(impacts, func(i, j int) bool {
		return impacts[i].Impact > impacts[j].Impact
	})

	return impacts
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

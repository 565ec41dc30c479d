package experiment

import (
	"fmt"

	"github.com/san-kum/neurosim/internal/config"
	"github.com/san-kum/neurosim/internal/fic"
	"github.com/san-kum/neurosim/internal/integrators"
	"github.com/san-kum/neurosim/internal/models"
	"github.com/san-kum/neurosim/internal/nmm"
)

// BuildModel constructs and builds the configured model variant for the
// given connectome. The parameter table is packed here; the model is
// ready for simulation on return.
func BuildModel(cfg *config.Config, weights [][]float64) (nmm.Model, error) {
	n := len(weights)
	switch cfg.Model {
	case "deco2018":
		m := models.NewDeco2018()
		m.AutoFIC = cfg.ModelParams.AutoFIC
		if len(cfg.ModelParams.J) > 0 {
			m.J = models.PerRegion(cfg.ModelParams.J)
		}
		if len(cfg.ModelParams.Receptor) > 0 {
			m.Receptor = models.PerRegion(cfg.ModelParams.Receptor)
		}
		m.WGainE = models.Scalar(cfg.ModelParams.WGainE)
		m.WGainI = models.Scalar(cfg.ModelParams.WGainI)
		if err := m.BuildFIC(n, fic.NewHerzog2022(), weights, cfg.G); err != nil {
			return nil, err
		}
		return m, nil
	case "naskar2021":
		m := models.NewNaskar2021()
		m.Gamma = models.Scalar(cfg.ModelParams.Gamma)
		if cfg.ModelParams.Rho != 0 {
			m.Rho = models.Scalar(cfg.ModelParams.Rho)
		}
		if err := m.Build(n); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown model: %s", cfg.Model)
	}
}

// BuildStepper constructs the configured integration scheme. Noise is
// applied to the synaptic activation rows only; a plasticity weight row
// stays deterministic.
func BuildStepper(cfg *config.Config, m nmm.Model, seed int64) (nmm.Stepper, error) {
	switch cfg.Integrator {
	case "euler":
		return integrators.NewEuler(), nil
	case "heun":
		return integrators.NewHeun(), nil
	case "euler_maruyama":
		sigma := make([]float64, m.NumStateVars())
		sigma[0] = cfg.Sigma
		sigma[1] = cfg.Sigma
		return integrators.NewEulerMaruyama(sigma, seed), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", cfg.Integrator)
	}
}

// ListModels returns the registered model names.
func ListModels() []string { return []string{"deco2018", "naskar2021"} }

// ListIntegrators returns the registered integrator names.
func ListIntegrators() []string { return []string{"euler", "heun", "euler_maruyama"} }

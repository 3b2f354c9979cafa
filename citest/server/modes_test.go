package server_test

import (
	"encoding/json"
	"io"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type modeView struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Source       string   `json:"source"`
	Capabilities []string `json:"capabilities"`
	Instructions string   `json:"instructions"`
}

func getJSON(path string, out any) *http.Response {
	resp, err := http.Get(baseURL + path)
	Expect(err).NotTo(HaveOccurred())
	body, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	resp.Body.Close()
	if out != nil {
		Expect(json.Unmarshal(body, out)).To(Succeed())
	}
	return resp
}

var _ = Describe("Mode Registry API", func() {
	Describe("GET /mode", func() {
		It("lists built-ins followed by project modes in authoring order", func() {
			var modes []modeView
			resp := getJSON("/mode", &modes)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			Expect(len(modes)).To(Equal(5))
			Expect(modes[0].Slug).To(Equal("python-tdd"))
			Expect(modes[4].Slug).To(Equal("security-review"))
			Expect(modes[4].Source).To(Equal("project"))
		})

		It("is idempotent across calls", func() {
			var first, second []modeView
			getJSON("/mode", &first)
			getJSON("/mode", &second)
			Expect(second).To(Equal(first))
		})

		It("filters by source", func() {
			var modes []modeView
			resp := getJSON("/mode?source=project", &modes)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(len(modes)).To(Equal(1))
			Expect(modes[0].Slug).To(Equal("security-review"))
		})
	})

	Describe("GET /mode/{slug}", func() {
		It("returns the mode for an exact slug match", func() {
			var m modeView
			resp := getJSON("/mode/python-tdd", &m)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(m.Name).To(Equal("Python:TDD"))
			Expect(m.Capabilities).To(ConsistOf("read", "edit", "browse", "command", "mcp"))
			Expect(m.Instructions).NotTo(BeEmpty())
		})

		It("returns NOT_FOUND for an absent slug", func() {
			var errResp struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			resp := getJSON("/mode/missing-slug", &errResp)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			Expect(errResp.Error.Code).To(Equal("NOT_FOUND"))
			Expect(errResp.Error.Message).To(ContainSubstring("missing-slug"))
		})

		It("does not case-fold slugs", func() {
			resp := getJSON("/mode/Python-TDD", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /capability", func() {
		It("returns the fixed vocabulary", func() {
			var caps []string
			resp := getJSON("/capability", &caps)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(caps).To(Equal([]string{"read", "edit", "browse", "command", "mcp"}))
		})
	})

	Describe("GET /issue", func() {
		It("reports the definition refused at load time", func() {
			var issues []struct {
				Path   string `json:"path"`
				Reason string `json:"reason"`
			}
			resp := getJSON("/issue", &issues)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(len(issues)).To(Equal(1))
			Expect(issues[0].Path).To(ContainSubstring("broken.md"))
			Expect(issues[0].Reason).To(ContainSubstring("front matter"))
		})
	})

	Describe("GET /config", func() {
		It("returns the effective tool configuration", func() {
			var cfg struct {
				Log struct {
					Level string `json:"level"`
				} `json:"log"`
			}
			resp := getJSON("/config", &cfg)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(cfg.Log.Level).To(Equal("info"))
		})
	})

	Describe("GET /health", func() {
		It("reports liveness and registry size", func() {
			var body map[string]any
			resp := getJSON("/health", &body)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body["status"]).To(Equal("ok"))
			Expect(body["modes"]).To(Equal(float64(5)))
		})
	})
})

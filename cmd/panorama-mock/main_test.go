package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/kubev2v/panorama-mock/internal/models"
	"github.com/kubev2v/panorama-mock/internal/store"
)

const smallDataSet = `num_of_customers: 1
num_of_collections_per_customer: [2]
days_back: [10]
first_col_vol_count: [4]
per_col_vol_count: [1]
first_col_snap_count: [2]
per_col_snap_count: [1]
first_col_clone_count: [1]
per_col_clone_count: [0]
seed: 7
`

func execute(args ...string) error {
	root := newRootCommand()
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	return root.ExecuteContext(context.Background())
}

var _ = Describe("CLI", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	// Given a small dataset file
	// When generating, loading the output and exporting the report
	// Then every step succeeds and the workbook holds the query sheets
	It("should generate, load and report a dataset", func() {
		// Arrange
		dataset := filepath.Join(dir, "dataset.yaml")
		Expect(os.WriteFile(dataset, []byte(smallDataSet), 0o644)).To(Succeed())
		out := filepath.Join(dir, "generated")
		db := filepath.Join(dir, "facts.duckdb")

		// Act
		Expect(execute("generate", "--dataset", dataset, "--output", out, "--workers", "1")).To(Succeed())
		Expect(execute("load", "--db", db, "--from-generated", out)).To(Succeed())

		// Assert
		customers := storedCustomers(db)
		Expect(customers).To(HaveLen(1))

		workbook := filepath.Join(dir, "golden.xlsx")
		Expect(execute("report", "--db", db, "--customer", customers[0], "--output", workbook)).To(Succeed())

		f, err := excelize.OpenFile(workbook)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		Expect(f.GetSheetList()).To(ContainElements("consumption", "snapshots age trend", "inventory summary"))
	})

	It("should load a dataset without an intermediate tree", func() {
		dataset := filepath.Join(dir, "dataset.yaml")
		Expect(os.WriteFile(dataset, []byte(smallDataSet), 0o644)).To(Succeed())
		db := filepath.Join(dir, "facts.duckdb")

		Expect(execute("load", "--db", db, "--dataset", dataset, "--workers", "1")).To(Succeed())
		Expect(storedCustomers(db)).To(HaveLen(1))
	})

	DescribeTable("should reject",
		func(args ...string) {
			Expect(execute(args...)).NotTo(Succeed())
		},
		Entry("load without a source", "load", "--db", ":memory:"),
		Entry("load with both sources", "load", "--db", ":memory:", "--from-generated", "x", "--dataset", "y"),
		Entry("report without a customer", "report", "--db", ":memory:"),
		Entry("upload without a target", "upload", "--dir", "."),
		Entry("generate --upload without a target", "generate", "--upload"),
		Entry("token without a secret", "token"),
		Entry("an unknown log format", "--log-format", "xml", "token", "--auth-secret", "s"),
	)

	It("should read flags from PANORAMA_ variables", func() {
		GinkgoT().Setenv("PANORAMA_AUTH_SECRET", "from-env")

		Expect(execute("token")).To(Succeed())
	})

	It("should read flags from a config file", func() {
		path := filepath.Join(dir, "config.yaml")
		Expect(os.WriteFile(path, []byte("auth-secret: from-file\nsubject: qa\n"), 0o644)).To(Succeed())

		Expect(execute("--config", path, "token")).To(Succeed())
	})
})

var _ = Describe("reportWindow", func() {
	now := time.Date(2024, 4, 10, 12, 30, 0, 0, time.UTC)

	It("should default to the twelve months before today", func() {
		w, err := reportWindow("", "", "", now)

		Expect(err).NotTo(HaveOccurred())
		Expect(w.End).To(Equal(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)))
		Expect(w.Start).To(Equal(time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)))
		Expect(w.Granularity).To(BeEmpty())
	})

	It("should parse explicit bounds", func() {
		w, err := reportWindow("2024-01-01", "2024-02-01", "day", now)

		Expect(err).NotTo(HaveOccurred())
		Expect(w.Start).To(Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		Expect(w.End).To(Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
		Expect(w.Granularity).To(Equal(models.GranularityDay))
	})

	DescribeTable("should reject",
		func(start, end, granularity string) {
			_, err := reportWindow(start, end, granularity, now)
			Expect(err).To(HaveOccurred())
		},
		Entry("a bad start", "01/01/2024", "", ""),
		Entry("a bad end", "", "tomorrow", ""),
		Entry("an unknown granularity", "", "", "month"),
	)
})

func storedCustomers(path string) []string {
	db, err := store.NewDB(path)
	Expect(err).NotTo(HaveOccurred())
	st := store.NewStore(db)
	defer st.Close()

	customers, err := st.Customers(context.Background())
	Expect(err).NotTo(HaveOccurred())
	return customers
}

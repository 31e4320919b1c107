// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-draw/models"
	"github.com/danielhkuo/quickly-draw/raffle"
	"github.com/danielhkuo/quickly-draw/registry"
	"github.com/danielhkuo/quickly-draw/testutil"
)

func draw(t *testing.T, h *DrawHandler, quantity int) (*httptest.ResponseRecorder, models.DrawResponse) {
	t.Helper()
	req := testutil.MakeRequest("POST", "/admin/draws", models.DrawRequest{Quantity: quantity}, nil)
	w := httptest.NewRecorder()
	h.Draw(w, req)

	var resp models.DrawResponse
	if w.Code != http.StatusInternalServerError {
		testutil.AssertJSON(t, w, &resp)
	}
	return w, resp
}

func seedRegistrations(t *testing.T, reg *registry.Registry) {
	t.Helper()
	for _, r := range []struct{ name, numbers string }{
		{"Ana", "2,1"},
		{"Bia", "5"},
	} {
		if _, err := reg.Register(r.name, r.numbers); err != nil {
			t.Fatalf("Register(%s) failed: %v", r.name, err)
		}
	}
}

func TestDraw_InvalidQuantity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	reg := newTestRegistry(db)
	seedRegistrations(t, reg)
	h := NewDrawHandler(raffle.NewEngine(reg, raffle.WithSeed(1)))

	for _, n := range []int{0, -1} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			w, resp := draw(t, h, n)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
			if resp.OK || resp.Message != "Invalid quantity." {
				t.Errorf("Unexpected response %+v", resp)
			}
		})
	}
}

func TestDraw_EmptyPool(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewDrawHandler(raffle.NewEngine(newTestRegistry(db), raffle.WithSeed(1)))

	w, resp := draw(t, h, 1)
	testutil.AssertStatus(t, w, http.StatusConflict)
	if resp.Message != "No numbers registered." {
		t.Errorf("Unexpected message %q", resp.Message)
	}
	if resp.DrawnNumbers != "" || len(resp.ResultsTable) != 0 {
		t.Errorf("Expected no draw output, got %+v", resp)
	}
}

func TestDraw_InsufficientPool(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	reg := newTestRegistry(db)
	seedRegistrations(t, reg)
	h := NewDrawHandler(raffle.NewEngine(reg, raffle.WithSeed(1)))

	w, resp := draw(t, h, 4)
	testutil.AssertStatus(t, w, http.StatusConflict)
	if resp.Message != "Only 3 unique numbers registered." {
		t.Errorf("Unexpected message %q", resp.Message)
	}
	if resp.PoolSize != 3 {
		t.Errorf("Expected pool_size 3, got %d", resp.PoolSize)
	}
}

func TestDraw_WholePool(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	reg := newTestRegistry(db)
	seedRegistrations(t, reg)
	h := NewDrawHandler(raffle.NewEngine(reg, raffle.WithSeed(1)))

	w, resp := draw(t, h, 3)
	testutil.AssertStatus(t, w, http.StatusOK)

	if !resp.OK {
		t.Error("Expected ok to be true")
	}
	if resp.DrawnNumbers != "1, 2, 5" {
		t.Errorf("Expected drawn numbers '1, 2, 5', got %q", resp.DrawnNumbers)
	}

	wantMessage := "Drawn numbers:\n\nNumber 1 - Ana\nNumber 2 - Ana\nNumber 5 - Bia\n"
	if resp.Message != wantMessage {
		t.Errorf("Expected message %q, got %q", wantMessage, resp.Message)
	}

	wantTable := []models.DrawEntry{
		{Number: 1, Winner: "Ana"},
		{Number: 2, Winner: "Ana"},
		{Number: 5, Winner: "Bia"},
	}
	if !slices.Equal(resp.ResultsTable, wantTable) {
		t.Errorf("Expected results %+v, got %+v", wantTable, resp.ResultsTable)
	}
}

func TestDraw_Subset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	reg := newTestRegistry(db)
	seedRegistrations(t, reg)
	h := NewDrawHandler(raffle.NewEngine(reg))

	owners := map[int]string{1: "Ana", 2: "Ana", 5: "Bia"}

	for i := 0; i < 20; i++ {
		w, resp := draw(t, h, 2)
		testutil.AssertStatus(t, w, http.StatusOK)

		if len(resp.ResultsTable) != 2 {
			t.Fatalf("Expected 2 results, got %d", len(resp.ResultsTable))
		}

		first, second := resp.ResultsTable[0], resp.ResultsTable[1]
		if first.Number >= second.Number {
			t.Errorf("Expected distinct ascending numbers, got %+v", resp.ResultsTable)
		}
		for _, entry := range resp.ResultsTable {
			if owners[entry.Number] != entry.Winner {
				t.Errorf("Number %d attributed to %q, want %q", entry.Number, entry.Winner, owners[entry.Number])
			}
		}

		want := strconv.Itoa(first.Number) + ", " + strconv.Itoa(second.Number)
		if resp.DrawnNumbers != want {
			t.Errorf("Expected drawn numbers %q, got %q", want, resp.DrawnNumbers)
		}
	}
}

func TestDraw_Unassigned(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestRegistration(t, db, "", "7")
	h := NewDrawHandler(raffle.NewEngine(newTestRegistry(db), raffle.WithSeed(1)))

	w, resp := draw(t, h, 1)
	testutil.AssertStatus(t, w, http.StatusOK)

	if !strings.Contains(resp.Message, "Number 7 - "+models.Unassigned) {
		t.Errorf("Expected unassigned winner in message, got %q", resp.Message)
	}
}

func TestDraw_StorageError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewDrawHandler(raffle.NewEngine(newTestRegistry(db), raffle.WithSeed(1)))
	db.Close()

	w, _ := draw(t, h, 1)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestDraw_InvalidJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewDrawHandler(raffle.NewEngine(newTestRegistry(db)))

	req := httptest.NewRequest("POST", "/admin/draws", strings.NewReader(`{"quantity": "two"}`))
	w := httptest.NewRecorder()
	h.Draw(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

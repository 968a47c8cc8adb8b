package movimiento_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	"github.com/sistema-bodega/bodega-api/internal/application/movimiento"
	"github.com/sistema-bodega/bodega-api/internal/domain"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	articulos   map[int64]*entity.Articulo
	movs        []*entity.Movimiento
	siguienteID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{articulos: map[int64]*entity.Articulo{}, siguienteID: 1}
}

// snapshot copia el estado para poder simular rollback por línea.
func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{
		articulos:   make(map[int64]*entity.Articulo, len(s.articulos)),
		movs:        append([]*entity.Movimiento(nil), s.movs...),
		siguienteID: s.siguienteID,
	}
	for id, a := range s.articulos {
		copia := *a
		cp.articulos[id] = &copia
	}
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.articulos = from.articulos
	s.movs = from.movs
	s.siguienteID = from.siguienteID
}

type fakeArticuloRepo struct{ s *fakeStore }

func (r *fakeArticuloRepo) Create(a *entity.Articulo) error { r.s.articulos[a.ID] = a; return nil }
func (r *fakeArticuloRepo) GetByID(id int64) (*entity.Articulo, error) {
	return r.s.articulos[id], nil
}
func (r *fakeArticuloRepo) GetForUpdate(id int64) (*entity.Articulo, error) {
	a, ok := r.s.articulos[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}
func (r *fakeArticuloRepo) Update(a *entity.Articulo) error { r.s.articulos[a.ID] = a; return nil }
func (r *fakeArticuloRepo) UpdateStock(id int64, stockActual, stockPrestado int) error {
	a := r.s.articulos[id]
	a.StockActual = stockActual
	a.StockPrestado = stockPrestado
	return nil
}
func (r *fakeArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) { return nil, nil }
func (r *fakeArticuloRepo) ListAll() ([]*entity.Articulo, error) { return nil, nil }
func (r *fakeArticuloRepo) Delete(id int64) error { return nil }

type fakeMovimientoRepo struct{ s *fakeStore }

func (r *fakeMovimientoRepo) Create(m *entity.Movimiento) error {
	m.ID = r.s.siguienteID
	r.s.siguienteID++
	r.s.movs = append(r.s.movs, m)
	return nil
}
func (r *fakeMovimientoRepo) GetByID(id int64) (*entity.Movimiento, error) {
	for _, m := range r.s.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeMovimientoRepo) List(limit, offset int) ([]*entity.Movimiento, error) {
	return r.s.movs, nil
}
func (r *fakeMovimientoRepo) ListPrestamos() ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range r.s.movs {
		if m.EsPrestamoORegreso() {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMovimientoRepo) ListPrestamosByPersonal(personalID int64) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range r.s.movs {
		if m.EsPrestamoORegreso() && m.PersonalID == personalID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner simula la transacción restaurando el estado si fn falla.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	articuloRepo repository.ArticuloRepository,
) error) error {
	antes := t.s.snapshot()
	if err := fn(&fakeMovimientoRepo{s: t.s}, &fakeArticuloRepo{s: t.s}); err != nil {
		t.s.restore(antes)
		return err
	}
	return nil
}

type fakeMotivoRepo struct{ motivos map[int64]string }

func (r *fakeMotivoRepo) Create(item *entity.Catalogo) error { return nil }
func (r *fakeMotivoRepo) GetByID(id int64) (*entity.Catalogo, error) {
	nombre, ok := r.motivos[id]
	if !ok {
		return nil, nil
	}
	return &entity.Catalogo{ID: id, Nombre: nombre}, nil
}
func (r *fakeMotivoRepo) GetByNombre(nombre string) (*entity.Catalogo, error) { return nil, nil }
func (r *fakeMotivoRepo) Update(item *entity.Catalogo) error { return nil }
func (r *fakeMotivoRepo) List() ([]*entity.Catalogo, error) { return nil, nil }
func (r *fakeMotivoRepo) Delete(id int64) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	idNotebook = int64(1)
	idJuan     = int64(7)
	idMotivo   = int64(3)
)

func nuevoEntorno(stockInicial int) (*movimiento.RegistrarUseCase, *fakeStore) {
	store := newFakeStore()
	store.articulos[idNotebook] = &entity.Articulo{
		ID:          idNotebook,
		Nombre:      "Notebook",
		StockActual: stockInicial,
	}
	uc := movimiento.NewRegistrarUseCase(
		&fakeTxRunner{s: store},
		&fakeMotivoRepo{motivos: map[int64]string{idMotivo: "Trabajo en terreno"}},
	)
	return uc, store
}

func peticion(tipo string, cantidad int, fecha time.Time) dto.RegistrarMovimientoRequest {
	return dto.RegistrarMovimientoRequest{
		ArticuloID:     idNotebook,
		PersonalID:     idJuan,
		TipoMovimiento: tipo,
		Cantidad:       cantidad,
		MotivoID:       idMotivo,
		Fecha:          &fecha,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Registrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_PrestamoMueveStock(t *testing.T) {
	uc, store := nuevoEntorno(5)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	id, err := uc.Registrar(context.Background(), peticion(entity.MovimientoPrestamo, 2, t0))
	require.NoError(t, err)
	assert.EqualValues(t, 1, id, "el primer movimiento recibe ID 1")

	a := store.articulos[idNotebook]
	assert.Equal(t, 3, a.StockActual, "el préstamo descuenta del stock disponible")
	assert.Equal(t, 2, a.StockPrestado, "y lo acumula en stock prestado")
	require.Len(t, store.movs, 1)
	assert.NotEmpty(t, store.movs[0].TransactionID, "cada movimiento lleva transaction_id")
}

func TestRegistrar_PrestamoSinStock_Falla(t *testing.T) {
	uc, store := nuevoEntorno(1)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	_, err := uc.Registrar(context.Background(), peticion(entity.MovimientoPrestamo, 2, t0))
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Empty(t, store.movs, "una línea rechazada no deja movimiento")
	assert.Equal(t, 1, store.articulos[idNotebook].StockActual, "el stock no se toca")
}

func TestRegistrar_SalidaSinStock_Falla(t *testing.T) {
	uc, _ := nuevoEntorno(0)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	in := peticion(entity.MovimientoSalida, 1, t0)
	in.PersonalID = 0 // las salidas no requieren persona
	_, err := uc.Registrar(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)
}

func TestRegistrar_EntradaSumaStock(t *testing.T) {
	uc, store := nuevoEntorno(0)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	in := peticion(entity.MovimientoEntrada, 10, t0)
	in.PersonalID = 0
	_, err := uc.Registrar(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 10, store.articulos[idNotebook].StockActual)
}

func TestRegistrar_PrestamoSinPersona_Falla(t *testing.T) {
	uc, _ := nuevoEntorno(5)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	in := peticion(entity.MovimientoPrestamo, 1, t0)
	in.PersonalID = 0
	_, err := uc.Registrar(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrar_MotivoInexistente_Falla(t *testing.T) {
	uc, _ := nuevoEntorno(5)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	in := peticion(entity.MovimientoPrestamo, 1, t0)
	in.MotivoID = 999
	_, err := uc.Registrar(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrMotivoRequerido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de devolución
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_RegresoMasDeUnaUnidad_Falla(t *testing.T) {
	uc, _ := nuevoEntorno(5)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	_, err := uc.Registrar(context.Background(), peticion(entity.MovimientoPrestamo, 3, t0))
	require.NoError(t, err)

	_, err = uc.Registrar(context.Background(), peticion(entity.MovimientoRegresado, 2, t0.Add(time.Hour)))
	assert.ErrorIs(t, err, domain.ErrLimiteDevolucion,
		"el formulario limita las devoluciones a 1 unidad por línea")
}

func TestRegistrar_RegresoSinPrestamoAbierto_Falla(t *testing.T) {
	uc, _ := nuevoEntorno(5)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	_, err := uc.Registrar(context.Background(), peticion(entity.MovimientoRegresado, 1, t0))
	assert.ErrorIs(t, err, domain.ErrSinPrestamoAbierto)
}

func TestRegistrar_RegresoAnteriorAlPrestamo_Falla(t *testing.T) {
	uc, _ := nuevoEntorno(5)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	_, err := uc.Registrar(context.Background(), peticion(entity.MovimientoPrestamo, 1, t0))
	require.NoError(t, err)

	_, err = uc.Registrar(context.Background(), peticion(entity.MovimientoRegresado, 1, t0.Add(-time.Hour)))
	assert.ErrorIs(t, err, domain.ErrFechaRegresoInvalida,
		"no se puede regresar antes del préstamo abierto más antiguo")
}

func TestRegistrar_CicloPrestamoRegreso(t *testing.T) {
	uc, store := nuevoEntorno(5)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	_, err := uc.Registrar(context.Background(), peticion(entity.MovimientoPrestamo, 1, t0))
	require.NoError(t, err)
	_, err = uc.Registrar(context.Background(), peticion(entity.MovimientoRegresado, 1, t0.Add(2*time.Hour)))
	require.NoError(t, err)

	a := store.articulos[idNotebook]
	assert.Equal(t, 5, a.StockActual, "el regreso restituye el stock disponible")
	assert.Equal(t, 0, a.StockPrestado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegistrarLote
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarLote_FallaParcialNoDetieneElResto(t *testing.T) {
	uc, store := nuevoEntorno(3)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	out := uc.RegistrarLote(context.Background(), dto.RegistrarLoteRequest{
		Lineas: []dto.RegistrarMovimientoRequest{
			peticion(entity.MovimientoPrestamo, 2, t0), // ok
			peticion(entity.MovimientoPrestamo, 5, t0), // stock insuficiente
			peticion(entity.MovimientoPrestamo, 1, t0), // ok (queda 1)
		},
	})

	require.Len(t, out.Resultados, 3, "una entrada de resultado por línea enviada")
	assert.Empty(t, out.Resultados[0].Error)
	assert.NotZero(t, out.Resultados[0].MovimientoID)
	assert.Equal(t, domain.ErrStockInsuficiente.Error(), out.Resultados[1].Error)
	assert.Empty(t, out.Resultados[2].Error, "la línea fallida no detiene las siguientes")

	a := store.articulos[idNotebook]
	assert.Equal(t, 0, a.StockActual)
	assert.Equal(t, 3, a.StockPrestado, "solo las líneas exitosas afectan el stock")
}

func TestRegistrarLote_SinRollbackTransversal(t *testing.T) {
	uc, store := nuevoEntorno(2)
	t0 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	out := uc.RegistrarLote(context.Background(), dto.RegistrarLoteRequest{
		Lineas: []dto.RegistrarMovimientoRequest{
			peticion(entity.MovimientoPrestamo, 2, t0), // ok
			peticion(entity.MovimientoPrestamo, 1, t0), // stock insuficiente
		},
	})

	assert.Empty(t, out.Resultados[0].Error)
	assert.NotEmpty(t, out.Resultados[1].Error)
	assert.Len(t, store.movs, 1, "la primera línea queda registrada aunque la segunda falle")
}

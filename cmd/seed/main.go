// seed genera el script SQL para poblar los datos base del almacén: el usuario
// admin inicial y datos maestros de ejemplo (categorías, unidades, un proveedor).
//
// Uso: go run ./cmd/seed [contraseña-admin]
// Sin argumento usa la contraseña de ADMIN_PASSWORD; si tampoco existe, "admin123".
// Escribe: internal/infrastructure/postgres/migrations/002_seed_base.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := os.Getenv("ADMIN_PASSWORD")
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	if password == "" {
		password = "admin123"
		fmt.Fprintln(os.Stderr, "ADMIN_PASSWORD no definido: usando contraseña por defecto (cámbiala en producción)")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_base.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos base del almacén: usuario admin y datos maestros de ejemplo.\n")
	out.WriteString("-- Generado con cmd/seed\n\n")

	// 1. Usuario admin
	out.WriteString("-- 1. Usuario administrador inicial\n")
	fmt.Fprintf(out,
		"INSERT INTO users (id, username, password_hash, full_name, role, status)\nVALUES ('%s', 'admin', '%s', 'Administrador', 'admin', 'active')\nON CONFLICT (username) DO NOTHING;\n\n",
		uuid.New().String(), escapeSQL(string(hash)))

	// 2. Unidades de medida
	units := []struct{ name, abbr string }{
		{"Unidad", "und"},
		{"Caja", "cja"},
		{"Kilogramo", "kg"},
		{"Litro", "lt"},
		{"Metro", "mt"},
	}
	out.WriteString("-- 2. Unidades de medida\n")
	for _, u := range units {
		fmt.Fprintf(out,
			"INSERT INTO units (id, name, abbreviation)\nSELECT '%s', '%s', '%s'\nWHERE NOT EXISTS (SELECT 1 FROM units WHERE name = '%s');\n",
			uuid.New().String(), escapeSQL(u.name), escapeSQL(u.abbr), escapeSQL(u.name))
	}
	out.WriteString("\n")

	// 3. Categorías
	categories := []struct{ name, desc string }{
		{"Insumos", "Materias primas y consumibles"},
		{"Herramientas", "Herramientas de trabajo"},
		{"Repuestos", "Repuestos y partes"},
		{"Papelería", "Material de oficina"},
	}
	out.WriteString("-- 3. Categorías\n")
	for _, c := range categories {
		fmt.Fprintf(out,
			"INSERT INTO categories (id, name, description, status)\nSELECT '%s', '%s', '%s', 'active'\nWHERE NOT EXISTS (SELECT 1 FROM categories WHERE name = '%s');\n",
			uuid.New().String(), escapeSQL(c.name), escapeSQL(c.desc), escapeSQL(c.name))
	}
	out.WriteString("\n")

	// 4. Proveedor de ejemplo
	out.WriteString("-- 4. Proveedor de ejemplo\n")
	fmt.Fprintf(out,
		"INSERT INTO suppliers (id, name, contact, phone, email, status)\nSELECT '%s', 'Proveedor General', 'Contacto', '3000000000', 'compras@proveedor.example', 'active'\nWHERE NOT EXISTS (SELECT 1 FROM suppliers WHERE name = 'Proveedor General');\n",
		uuid.New().String())

	fmt.Printf("Generado %s: admin + %d unidades, %d categorías, 1 proveedor\n",
		outPath, len(units), len(categories))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

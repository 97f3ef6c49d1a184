package harness

// InitScript is the environment bootstrap script written to init.sh. It is
// byte-identical across runs: no project data is interpolated.
//
// The script installs dependencies for the first manifest it finds, in the
// fixed order package.json, requirements.txt, Cargo.toml, go.mod. Remaining
// manifests are ignored even when several are present.
const InitScript = `#!/bin/bash
# Development Environment Initialization Script
# Run this at the start of each coding session

set -e

echo "🚀 Starting development environment..."

# Resolve paths
SCRIPT_DIR="$(cd "$(dirname "$0")" && pwd)"
PROJECT_ROOT="$(cd "$SCRIPT_DIR/../.." && pwd)"

# Navigate to project root
cd "$PROJECT_ROOT"

# Check for common package managers and install dependencies
if [ -f "package.json" ]; then
    echo "📦 Installing Node.js dependencies..."
    npm install
elif [ -f "requirements.txt" ]; then
    echo "🐍 Installing Python dependencies..."
    pip install -r requirements.txt
elif [ -f "Cargo.toml" ]; then
    echo "🦀 Building Rust project..."
    cargo build
elif [ -f "go.mod" ]; then
    echo "🐹 Installing Go dependencies..."
    go mod download
fi

# Start development server (customize based on your project)
# Uncomment and modify the appropriate line:

# Node.js
# npm run dev &

# Python Flask
# python app.py &

# Python Django
# python manage.py runserver &

# Go
# go run main.go &

echo "✅ Development environment ready!"
echo ""
echo "📋 Quick commands:"
echo "   - Check progress: cat $SCRIPT_DIR/progress.txt"
echo "   - View features:  cat $SCRIPT_DIR/feature_list.json"
echo "   - Git history:    git log --oneline -10"
`

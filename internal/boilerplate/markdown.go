package boilerplate

import "fmt"

// Markdown generates a generic documentation page.
func Markdown(filename string) string {
	title := titleWords(stem(filename))

	return fmt.Sprintf(`# %[1]s

*Generated on %[2]s*

## Overview

This document provides information about %[3]s.

## Table of Contents

- [Overview](#overview)
- [Installation](#installation)
- [Usage](#usage)
- [Features](#features)
- [Contributing](#contributing)
- [License](#license)

## Installation

`+"```bash"+`
# TODO: Add installation instructions
npm install
# or
pip install -r requirements.txt
`+"```"+`

## Usage

`+"```bash"+`
# TODO: Add usage examples
python main.py
# or
npm start
`+"```"+`

## Features

- [ ] Feature 1
- [ ] Feature 2
- [ ] Feature 3

## Contributing

1. Fork the repository
2. Create your feature branch (`+"`git checkout -b feature/amazing-feature`"+`)
3. Commit your changes (`+"`git commit -m 'Add some amazing feature'`"+`)
4. Push to the branch (`+"`git push origin feature/amazing-feature`"+`)
5. Open a Pull Request

## License

This project is licensed under the MIT License - see the [LICENSE](LICENSE) file for details.
`, title, today(), spokenName(stem(filename)))
}

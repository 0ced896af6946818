package boilerplate

import "fmt"

// Python generates a module skeleton with a main class and entry point.
func Python(filename string) string {
	name := stem(filename)
	spoken := spokenName(name)
	title := titleWords(name)

	return fmt.Sprintf(`#!/usr/bin/env python3
"""
%[1]s Module

This module provides functionality for %[2]s.

Date: %[3]s
"""

import logging
from typing import Any, Dict, List, Optional, Union

logger = logging.getLogger(__name__)


class %[4]s:
    """
    Main class for %[2]s functionality.
    """

    def __init__(self):
        """Initialize the %[2]s instance."""
        logger.info("Initializing %[2]s")
        self._initialized = True

    def process(self, data: Any) -> Any:
        """
        Process the input data.

        Args:
            data: Input data to process

        Returns:
            Processed data

        Raises:
            RuntimeError: If the instance is not initialized
        """
        if not self._initialized:
            raise RuntimeError("Instance not properly initialized")

        # TODO: Implement processing logic
        logger.info("Processing data")
        return data


def main():
    """Main function for standalone execution."""
    print("Running %[2]s")


if __name__ == "__main__":
    main()
`, title, spoken, today(), className(name))
}
